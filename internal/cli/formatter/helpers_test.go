package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSGD(t *testing.T) {
	assert.Equal(t, "S$0", SGD(0))
	assert.Equal(t, "S$950", SGD(950))
	assert.Equal(t, "S$150,000", SGD(150000))
	assert.Equal(t, "S$1,250,000", SGD(1250000))
}

func TestPeriod(t *testing.T) {
	open := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	closeDate := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Jan 1 – Feb 15, 2024", Period(open, closeDate))

	closeNextYear := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Jan 1, 2024 – Jan 5, 2025", Period(open, closeNextYear))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "UNITS"},
		[][]string{
			{"Acacia Breeze", "12"},
			{"Yishun Glen", "3"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, two data rows.
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Acacia Breeze")
	assert.Contains(t, lines[3], "Yishun Glen")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestApplicationStatusPill_CoversAllStatuses(t *testing.T) {
	statuses := []domain.ApplicationStatus{
		domain.AppPending,
		domain.AppSuccessful,
		domain.AppBooked,
		domain.AppUnsuccessful,
		domain.AppWithdrawalPending,
		domain.AppWithdrawalSuccessful,
		domain.AppWithdrawalUnsuccessful,
	}
	seen := make(map[string]bool)
	for _, s := range statuses {
		pill := ApplicationStatusPill(s)
		assert.NotEmpty(t, pill)
		assert.False(t, seen[pill], "pill for %s duplicates another status", s)
		seen[pill] = true
	}
}

func TestFormatEnquiryList_ThreadsReplies(t *testing.T) {
	now := time.Now()
	replied := &domain.Enquiry{
		ID:         "e1",
		AuthorNRIC: "S1234567A",
		Text:       "When is the showflat open?",
		Reply:      "March",
		CreatedAt:  now,
		RepliedAt:  &now,
	}
	open := &domain.Enquiry{
		ID:         "e2",
		AuthorNRIC: "S7654321B",
		Text:       "Any three-room units left?",
		CreatedAt:  now,
	}

	out := FormatEnquiryList([]*domain.Enquiry{replied, open})
	assert.Contains(t, out, "When is the showflat open?")
	assert.Contains(t, out, "March")
	assert.Contains(t, out, "awaiting reply")
}

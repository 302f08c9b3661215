package domain

type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "SINGLE"
	MaritalMarried MaritalStatus = "MARRIED"
)

type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleOfficer   Role = "OFFICER"
	RoleManager   Role = "MANAGER"
)

type FlatKind string

const (
	FlatTwoRoom   FlatKind = "TWO_ROOM"
	FlatThreeRoom FlatKind = "THREE_ROOM"
)

// ValidFlatKinds is the canonical set of accepted flat kind strings.
var ValidFlatKinds = map[string]bool{
	string(FlatTwoRoom): true, string(FlatThreeRoom): true,
}

type ApplicationStatus string

const (
	AppPending                ApplicationStatus = "PENDING"
	AppSuccessful             ApplicationStatus = "SUCCESSFUL"
	AppUnsuccessful           ApplicationStatus = "UNSUCCESSFUL"
	AppBooked                 ApplicationStatus = "BOOKED"
	AppWithdrawalPending      ApplicationStatus = "WITHDRAWAL_PENDING"
	AppWithdrawalSuccessful   ApplicationStatus = "WITHDRAWAL_SUCCESSFUL"
	AppWithdrawalUnsuccessful ApplicationStatus = "WITHDRAWAL_UNSUCCESSFUL"
)

type RegistrationStatus string

const (
	RegPending      RegistrationStatus = "PENDING"
	RegSuccessful   RegistrationStatus = "SUCCESSFUL"
	RegUnsuccessful RegistrationStatus = "UNSUCCESSFUL"
)

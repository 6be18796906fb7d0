package models

type UserRole string

const (
	UserRoleWorker UserRole = "worker"
	UserRoleOwner  UserRole = "owner"
)

var roleHumanName = map[UserRole]string{
	UserRoleWorker: "Worker",
	UserRoleOwner:  "Factory owner",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	return r == UserRoleWorker || r == UserRoleOwner
}

// Counterpart is the role a user of role r rates or reports.
func (r UserRole) Counterpart() UserRole {
	if r == UserRoleWorker {
		return UserRoleOwner
	}
	return UserRoleWorker
}

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusVerified UserStatus = "verified"
)

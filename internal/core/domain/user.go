package domain

// UserRole distinguishes the account flavors the frontend signs up.
type UserRole string

const (
	RoleIndividual UserRole = "individual"
	RoleBusiness   UserRole = "business"
	RoleAdmin      UserRole = "admin"
)

// User represents a registered user of the application.
type User struct {
	UserID       string   `json:"userId"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"passwordHash,omitempty"`

	// Individual profile fields.
	Age        int    `json:"age,omitempty"`
	Profession string `json:"profession,omitempty"`

	// Business profile fields.
	BusinessName  string `json:"businessName,omitempty"`
	BusinessRegNo string `json:"businessRegNo,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

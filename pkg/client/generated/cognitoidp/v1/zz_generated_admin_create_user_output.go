package client

const (
	AdminCreateUserOutputShape     = "AdminCreateUserOutput"
	AdminCreateUserOutputFieldUser = "User"
)

type AdminCreateUserOutput struct {
	User *UserType `json:"User,omitempty" yaml:"User,omitempty"`
}

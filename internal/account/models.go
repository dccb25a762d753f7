package account

// Role distinguishes the two sides of the marketplace.
type Role string

const (
	// RoleExpert is an individual offering expertise
	RoleExpert Role = "expert"
	// RoleCompany is a company looking for experts
	RoleCompany Role = "company"
)

// Account represents a registered account. Email is the identity key and is
// stored exactly as provided, without normalization. The password is kept only
// as a bcrypt hash.
type Account struct {
	Role         Role   `json:"role"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	CompanyName  string `json:"companyName,omitempty"`
	Specialty    string `json:"specialty,omitempty"`
}

// RegisterRequest is the payload for POST /api/register
type RegisterRequest struct {
	Role        Role   `json:"role" binding:"required,oneof=expert company"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Specialty   string `json:"specialty"`
}

// LoginRequest is the payload for POST /api/login
type LoginRequest struct {
	Role     Role   `json:"role" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both register and login: every successful
// credential check issues a session.
type AuthResponse struct {
	Token     string `json:"token"`
	Role      Role   `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ExpiresIn int    `json:"expiresIn"`
}

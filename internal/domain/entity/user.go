package entity

// User is the identity returned by the identity-check endpoint.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Valid reports whether u identifies a known account with a marketplace role.
func (u *User) Valid() bool {
	return u != nil && u.ID != "" && u.Role.IsValid()
}

// AuthResult is the body returned by login and register.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Valid reports whether r carries a token and a valid user.
func (r *AuthResult) Valid() bool {
	return r != nil && r.AccessToken != "" && r.User.Valid()
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the customer sign-up form.
type Registration struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"omitempty,eqfield=Password"`
}

// VendorRegistration is the vendor sign-up form. Vendor accounts wait for admin approval.
type VendorRegistration struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	BusinessName string `json:"business_name" validate:"required"`
	Description  string `json:"description"`
	Phone        string `json:"phone" validate:"required"`
	AcceptTerms  bool   `json:"-" validate:"eq=true"`
}

// Vendor is a seller account as listed by the API.
type Vendor struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Description  string `json:"description"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

// internal/domain/account/entity.go
package account

import "time"

// User is the identity record owned by the hosted account service. We never
// store it ourselves; it is fetched or returned by the service's endpoints.
type User struct {
	ID        string                 `json:"id"`
	Email     string                 `json:"email"`
	Metadata  map[string]interface{} `json:"user_metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at,omitempty"`
}

// FullName extracts the display name from the signup metadata, if present.
func (u *User) FullName() string {
	if u == nil || u.Metadata == nil {
		return ""
	}
	if name, ok := u.Metadata["full_name"].(string); ok {
		return name
	}
	return ""
}

// Session is the token bundle issued by the hosted service on sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`
}

// Profile is the user-data row kept in the hosted store, keyed by the auth
// user id. Date of birth is stored as YYYY-MM-DD.
type Profile struct {
	UID          string `json:"uid"`
	Email        string `json:"email,omitempty"`
	CPF          string `json:"cpf"`
	Phone        string `json:"phone"`
	BirthDate    string `json:"birth_date"`
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

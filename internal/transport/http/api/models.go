// Package api defines transport DTOs for the HTTP delivery layer.
package api

import "time"

// ErrorCode enumerates machine-readable error identifiers.
type ErrorCode string

const (
	// INVALIDARGUMENT marks failed input validation.
	INVALIDARGUMENT ErrorCode = "INVALID_ARGUMENT"
	// UNAUTHORIZED marks a missing or invalid session.
	UNAUTHORIZED ErrorCode = "UNAUTHORIZED"
	// INVALIDCREDENTIALS marks a failed sign-in.
	INVALIDCREDENTIALS ErrorCode = "INVALID_CREDENTIALS"
	// EMAILTAKEN marks an account email conflict.
	EMAILTAKEN ErrorCode = "EMAIL_TAKEN"
	// NOTFOUND marks a missing resource.
	NOTFOUND ErrorCode = "NOT_FOUND"
	// INTERNAL marks an unexpected failure.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error code and message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Skills is the six-part skill vector DTO.
type Skills struct {
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Reception int `json:"reception"`
	Setting   int `json:"setting"`
	Serve     int `json:"serve"`
	Block     int `json:"block"`
}

// Player is the roster member DTO.
type Player struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Gender    string     `json:"gender"`
	Level     string     `json:"level"`
	Rating    float64    `json:"rating"`
	IsMVP     bool       `json:"is_mvp"`
	AvatarURL string     `json:"avatar_url"`
	Skills    Skills     `json:"skills"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// PlayerInput carries caller-settable player fields. Rating and the MVP flag
// are always derived server-side.
type PlayerInput struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Level     string `json:"level"`
	AvatarURL string `json:"avatar_url"`
	Skills    Skills `json:"skills"`
}

// SignUpRequest registers an account.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest opens a session.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account is the public account DTO.
type Account struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// SessionResponse returns the bearer token with its account.
type SessionResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// DrawRequest selects players and a method for one draw.
type DrawRequest struct {
	PlayerIDs []string `json:"player_ids"`
	TeamSize  int      `json:"team_size"`
	Method    string   `json:"method"`
}

// DrawResponse lists the produced teams and the method that resolved them.
type DrawResponse struct {
	Method string     `json:"method"`
	Teams  [][]Player `json:"teams"`
}

// PaymentRequest upserts one dues fact.
type PaymentRequest struct {
	PlayerID string  `json:"player_id"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	IsPaid   bool    `json:"is_paid"`
	Amount   float64 `json:"amount"`
}

// Payment is the dues fact DTO.
type Payment struct {
	ID        string     `json:"id"`
	PlayerID  string     `json:"player_id"`
	Month     int        `json:"month"`
	Year      int        `json:"year"`
	IsPaid    bool       `json:"is_paid"`
	Amount    float64    `json:"amount"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// TransactionRequest appends one ledger entry.
type TransactionRequest struct {
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Date        *time.Time `json:"date,omitempty"`
}

// Transaction is the ledger entry DTO.
type Transaction struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Date        time.Time  `json:"date"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// BalanceResponse reports the global cash balance.
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// ProfileRequest upserts the owner profile.
type ProfileRequest struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Age       *int   `json:"age,omitempty"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Level     string `json:"level"`
	AvatarURL string `json:"avatar_url"`
}

// Profile is the owner profile DTO.
type Profile struct {
	Name      string     `json:"name"`
	Bio       string     `json:"bio"`
	Age       *int       `json:"age,omitempty"`
	Phone     string     `json:"phone"`
	Gender    string     `json:"gender"`
	Level     string     `json:"level"`
	AvatarURL string     `json:"avatar_url"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SettingsRequest updates per-account application state.
type SettingsRequest struct {
	Theme string `json:"theme"`
}

// Settings is the per-account application state DTO.
type Settings struct {
	Theme string `json:"theme"`
}

// AvatarResponse returns the public URL of an uploaded avatar.
type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/XEXEU22/volleyapp/internal/entities"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
)

// FromAPIPlayerInput builds an entities.Player from the transport DTO. The id
// is empty on create and set by the handler on update; rating and the MVP flag
// are derived downstream.
func FromAPIPlayerInput(ownerID, id string, src api.PlayerInput) entities.Player {
	return entities.Player{
		ID:        id,
		OwnerID:   ownerID,
		Name:      src.Name,
		Gender:    entities.Gender(src.Gender),
		Level:     entities.Level(src.Level),
		AvatarURL: src.AvatarURL,
		Skills: entities.Skills{
			Attack:    src.Skills.Attack,
			Defense:   src.Skills.Defense,
			Reception: src.Skills.Reception,
			Setting:   src.Skills.Setting,
			Serve:     src.Skills.Serve,
			Block:     src.Skills.Block,
		},
	}
}

// ToAPIPlayer maps entities.Player to transport model.
func ToAPIPlayer(p entities.Player) api.Player {
	return api.Player{
		ID:        p.ID,
		Name:      p.Name,
		Gender:    string(p.Gender),
		Level:     string(p.Level),
		Rating:    p.Rating,
		IsMVP:     p.MVP,
		AvatarURL: p.AvatarURL,
		Skills: api.Skills{
			Attack:    p.Skills.Attack,
			Defense:   p.Skills.Defense,
			Reception: p.Skills.Reception,
			Setting:   p.Skills.Setting,
			Serve:     p.Skills.Serve,
			Block:     p.Skills.Block,
		},
		CreatedAt: p.CreatedAt,
	}
}

// ToAPIPlayerList maps a roster slice to transport slice.
func ToAPIPlayerList(list []entities.Player) []api.Player {
	res := make([]api.Player, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIPlayer(p))
	}
	return res
}

// ToAPIDrawResponse maps a draw outcome to transport model.
func ToAPIDrawResponse(src entities.DrawResult) api.DrawResponse {
	teams := make([][]api.Player, 0, len(src.Teams))
	for _, t := range src.Teams {
		teams = append(teams, ToAPIPlayerList(t.Players))
	}
	return api.DrawResponse{
		Method: string(src.Method),
		Teams:  teams,
	}
}

// ToAPIAccount maps entities.Account to its public transport model.
func ToAPIAccount(a entities.Account) api.Account {
	return api.Account{
		ID:        a.ID,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// ToAPIPayment maps entities.Payment to transport model.
func ToAPIPayment(p entities.Payment) api.Payment {
	return api.Payment{
		ID:        p.ID,
		PlayerID:  p.PlayerID,
		Month:     p.Month,
		Year:      p.Year,
		IsPaid:    p.Paid,
		Amount:    p.Amount,
		CreatedAt: p.CreatedAt,
	}
}

// ToAPIPaymentList maps a payment slice to transport slice.
func ToAPIPaymentList(list []entities.Payment) []api.Payment {
	res := make([]api.Payment, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIPayment(p))
	}
	return res
}

// ToAPITransaction maps entities.CashTransaction to transport model.
func ToAPITransaction(t entities.CashTransaction) api.Transaction {
	return api.Transaction{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

// ToAPITransactionList maps a ledger slice to transport slice.
func ToAPITransactionList(list []entities.CashTransaction) []api.Transaction {
	res := make([]api.Transaction, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITransaction(t))
	}
	return res
}

// FromAPIProfile builds an entities.Profile from the transport DTO.
func FromAPIProfile(ownerID string, src api.ProfileRequest) entities.Profile {
	return entities.Profile{
		OwnerID:   ownerID,
		Name:      src.Name,
		Bio:       src.Bio,
		Age:       src.Age,
		Phone:     src.Phone,
		Gender:    entities.Gender(src.Gender),
		Level:     entities.Level(src.Level),
		AvatarURL: src.AvatarURL,
	}
}

// ToAPIProfile maps entities.Profile to transport model.
func ToAPIProfile(p entities.Profile) api.Profile {
	return api.Profile{
		Name:      p.Name,
		Bio:       p.Bio,
		Age:       p.Age,
		Phone:     p.Phone,
		Gender:    string(p.Gender),
		Level:     string(p.Level),
		AvatarURL: p.AvatarURL,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToAPISettings maps entities.Settings to transport model.
func ToAPISettings(s entities.Settings) api.Settings {
	return api.Settings{Theme: string(s.Theme)}
}

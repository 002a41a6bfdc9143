// internal/service/profile/profile.go
package profile

import (
	"context"

	"go.uber.org/zap"

	domain "rxautos-service/internal/domain/account"
	"rxautos-service/internal/forms"
	xerrors "rxautos-service/internal/pkg/errors"
)

// Store is the profile-row slice of the hosted data service.
type Store interface {
	GetProfile(ctx context.Context, token, uid string) (*domain.Profile, error)
	InsertProfile(ctx context.Context, token string, p *domain.Profile) error
	UpdateProfile(ctx context.Context, token string, p *domain.Profile) error
}

// Form is the profile editor's field set, masked for display. Exists tells
// the editor whether a saved record backs the form.
type Form struct {
	CPF          string `json:"cpf"`
	Phone        string `json:"phone"`
	BirthDate    string `json:"birth_date"`
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Exists       bool   `json:"exists"`
}

type ProfileService struct {
	store  Store
	logger *zap.Logger
}

func NewProfileService(store Store, logger *zap.Logger) *ProfileService {
	return &ProfileService{store: store, logger: logger}
}

// Load fetches the user's saved record and masks it for display. A user with
// no record yet gets an empty form.
func (s *ProfileService) Load(ctx context.Context, token, uid string) (*Form, error) {
	record, err := s.store.GetProfile(ctx, token, uid)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return &Form{}, nil
		}
		s.logger.Error("failed to load profile", zap.String("uid", uid), zap.Error(err))
		return nil, err
	}
	return displayForm(record), nil
}

// Save converts the form back to the stored shape, inserts or updates
// depending on whether a record already exists, then re-fetches the saved
// record so the caller renders exactly what was persisted.
func (s *ProfileService) Save(ctx context.Context, token, uid string, form *Form) (*Form, error) {
	record := &domain.Profile{
		UID:          uid,
		CPF:          form.CPF,
		Phone:        form.Phone,
		BirthDate:    forms.DateToStored(form.BirthDate),
		CEP:          form.CEP,
		Street:       form.Street,
		Number:       form.Number,
		Neighborhood: form.Neighborhood,
		City:         form.City,
		State:        form.State,
	}

	_, err := s.store.GetProfile(ctx, token, uid)
	switch {
	case err == nil:
		err = s.store.UpdateProfile(ctx, token, record)
	case xerrors.Is(err, xerrors.ErrNotFound):
		err = s.store.InsertProfile(ctx, token, record)
	}
	if err != nil {
		s.logger.Error("failed to save profile", zap.String("uid", uid), zap.Error(err))
		return nil, err
	}

	saved, err := s.store.GetProfile(ctx, token, uid)
	if err != nil {
		s.logger.Error("failed to reload saved profile", zap.String("uid", uid), zap.Error(err))
		return nil, err
	}
	return displayForm(saved), nil
}

func displayForm(p *domain.Profile) *Form {
	return &Form{
		CPF:          forms.FormatCPF(p.CPF),
		Phone:        forms.FormatPhone(p.Phone),
		BirthDate:    forms.DateToDisplay(p.BirthDate),
		CEP:          forms.FormatCEP(p.CEP),
		Street:       p.Street,
		Number:       p.Number,
		Neighborhood: p.Neighborhood,
		City:         p.City,
		State:        p.State,
		Exists:       true,
	}
}

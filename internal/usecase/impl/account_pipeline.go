// Package impl contains the implementation of the application's business logic.
package impl

import (
	"account/internal/domain/credential"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/service"
	"account/internal/errors"
	"account/internal/usecase"
)

// prepareNewUser turns raw registration input into a user ready to be stored:
// every field present and valid, name capitalized, email lowercased and the
// password replaced by its digest.
func prepareNewUser(hasher service.PasswordHasher, name, email, password string) (*entity.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	if err := credential.ValidateNewUser(name, email, password); err != nil {
		return nil, validationFailed(err)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return &entity.User{
		Name:         credential.Capitalize(name),
		Email:        credential.NormalizeEmail(email),
		PasswordHash: hash,
	}, nil
}

// preparePatch applies the registration rules to the fields present in an update.
func preparePatch(hasher service.PasswordHasher, input *usecase.UpdateUserInput) (*entity.UserPatch, error) {
	fields := credential.ValidationErrors{}
	if input.Name != nil {
		fields.ValidateName(*input.Name)
	}
	if input.Email != nil {
		fields.ValidateEmail(*input.Email)
	}
	if input.Password != nil {
		fields.ValidatePassword(*input.Password)
	}
	if err := fields.OrNil(); err != nil {
		return nil, validationFailed(err)
	}

	patch := &entity.UserPatch{}
	if input.Name != nil {
		name := credential.Capitalize(*input.Name)
		patch.Name = &name
	}
	if input.Email != nil {
		email := credential.NormalizeEmail(*input.Email)
		patch.Email = &email
	}
	if input.Password != nil {
		hash, err := hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		patch.PasswordHash = &hash
	}

	return patch, nil
}

func validationFailed(err error) error {
	var fields credential.ValidationErrors
	if errors.As(err, &fields) {
		return domainerrors.ErrValidationFailed.WithDetails(map[string]string(fields))
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
}

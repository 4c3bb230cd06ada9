package repository

import (
	"errors"
	"fmt"
	"log"

	"crafts-server/models"
	"crafts-server/storage"
)

// Users lists the registered accounts in registration order.
func (r *Repository) Users() ([]models.User, error) {
	return loadList[models.User](r.store, storage.KeyUsers)
}

// Register appends a new account. Email is the natural key: a second
// registration against the same email fails with ErrDuplicateUser and
// leaves the original account (and its password) untouched.
func (r *Repository) Register(email, password string) error {
	user := models.User{Email: email, Password: password}
	if err := models.Validate(user); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	users, err := r.Users()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == email {
			return ErrDuplicateUser
		}
	}

	users = append(users, user)
	return r.store.Set(storage.KeyUsers, users)
}

// Login requires an exact (email, password) match and writes the
// current-user snapshot on success.
func (r *Repository) Login(email, password string) (*models.User, error) {
	users, err := r.Users()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := r.store.Set(storage.KeyCurrentUser, u); err != nil {
				return nil, err
			}
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the current-user snapshot.
func (r *Repository) Logout() error {
	return r.store.Delete(storage.KeyCurrentUser)
}

// CurrentUser returns the active session's user snapshot, or nil when
// logged out. A snapshot that parses but fails validation is treated
// like any other corrupt state: reset and logged out.
func (r *Repository) CurrentUser() (*models.User, error) {
	var u models.User
	err := r.store.Get(storage.KeyCurrentUser, &u)
	if err == nil {
		if valErr := models.Validate(u); valErr != nil {
			log.Printf("⚠️ repository: shape-invalid current-user snapshot: %v", valErr)
			if resetErr := r.store.Reset(storage.KeyCurrentUser); resetErr != nil {
				return nil, resetErr
			}
			return nil, nil
		}
		return &u, nil
	}
	if errors.Is(err, storage.ErrAbsent) {
		return nil, nil
	}

	var corrupt *storage.CorruptError
	if errors.As(err, &corrupt) {
		log.Printf("⚠️ repository: %v", corrupt)
		if resetErr := r.store.Reset(storage.KeyCurrentUser); resetErr != nil {
			return nil, resetErr
		}
		return nil, nil
	}
	return nil, err
}

// DeleteUser removes the account with the given email.
func (r *Repository) DeleteUser(email string) error {
	users, err := r.Users()
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.Email != email {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return ErrNotFound
	}
	return r.store.Set(storage.KeyUsers, kept)
}

package staff

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

// Directory holds the staff accounts allowed into the dashboard. Seeded
// at startup from config; there is no self-service registration.
type Directory struct {
	users map[string]models.StaffUser
}

func NewDirectory() *Directory {
	return &Directory{users: map[string]models.StaffUser{}}
}

// Seed adds a user with the given plaintext password, hashing it with
// bcrypt. Returns the error from hashing only; duplicate emails replace.
func (d *Directory) Seed(email, name, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	d.users[email] = models.StaffUser{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
		Role:         "staff",
	}
	return nil
}

func (d *Directory) FindByEmail(email string) (models.StaffUser, bool) {
	u, ok := d.users[strings.ToLower(strings.TrimSpace(email))]
	return u, ok
}

func (d *Directory) VerifyPassword(u models.StaffUser, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

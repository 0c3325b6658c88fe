// Package auth verifies credentials against a flat users file. Each
// non-comment line reads user:bcrypt-hash:role[,role...]. The file is
// re-read when an unknown user shows up, so adding a user does not need
// a restart.
package auth

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/tagmark/tagmark/internal/logger"
)

// User is one configured account.
type User struct {
	Name         string
	PasswordHash string
	Roles        []string
}

// Users loads and caches the accounts from the users file.
type Users struct {
	path string
	log  logger.Logger

	mu    sync.Mutex
	known map[string]User
}

// NewUsers creates the user registry for a users file. The file is read
// lazily on first lookup.
func NewUsers(path string, log logger.Logger) *Users {
	return &Users{
		path:  path,
		log:   log,
		known: make(map[string]User),
	}
}

// Authenticate checks a name/password pair. Unknown users trigger one
// reload of the file before failing.
func (u *Users) Authenticate(name, password string) bool {
	user, ok := u.lookup(name)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Lookup returns the configured user, reloading the file on a miss.
func (u *Users) Lookup(name string) (User, bool) {
	return u.lookup(name)
}

func (u *Users) lookup(name string) (User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.known[name]
	if ok {
		return user, true
	}

	if err := u.reloadLocked(); err != nil {
		u.log.Warn("failed to load users file",
			logger.String("path", u.path),
			logger.Error(err))
		return User{}, false
	}

	user, ok = u.known[name]
	return user, ok
}

func (u *Users) reloadLocked() error {
	data, err := os.ReadFile(u.path)
	if err != nil {
		return fmt.Errorf("failed to read users file: %w", err)
	}

	known := make(map[string]User)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) != 3 {
			continue
		}
		roles := strings.Split(fields[2], ",")
		if len(roles) == 0 {
			roles = []string{"undef"}
		}
		known[fields[0]] = User{
			Name:         fields[0],
			PasswordHash: fields[1],
			Roles:        roles,
		}
	}

	u.known = known
	u.log.Debug("loaded users file",
		logger.String("path", u.path),
		logger.Int("users", len(known)))
	return nil
}

// Package auth holds the mock identity directory: a session-local list
// of registered users and an Anonymous/Authenticated session pointer.
// It models the original storefront's behavior faithfully, including
// its known gap: passwords are accepted but never stored or verified.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Storefront/internal/storage"
	"Storefront/pkg/kit"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("no account registered for this email")
)

const (
	usersKey  = "users"
	userKey   = "user"
	storeName = "auth"

	// DefaultLatency models the future network round-trip on sign-up
	// and sign-in. There is no cancellation; callers await completion.
	DefaultLatency = 500 * time.Millisecond
)

// User is a registered identity. CreatedAt serializes as RFC 3339,
// matching the persisted document format.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Directory owns two persisted collections: the append-only users
// list and the at-most-one current session user.
type Directory struct {
	port    storage.Port
	log     *zap.Logger
	metrics *kit.StoreMetrics
	latency time.Duration

	mu      sync.RWMutex
	users   []User
	current *User
	loaded  bool
	subs    []func()
}

func NewDirectory(port storage.Port, log *zap.Logger, metrics *kit.StoreMetrics, latency time.Duration) *Directory {
	return &Directory{
		port:    port,
		log:     log,
		metrics: metrics,
		latency: latency,
	}
}

// Load hydrates the users list and the current session once. Corrupt
// blobs are discarded independently of each other. If either read
// fails the directory stays unloaded: it must not persist over blobs
// it never saw, and Load may be retried.
func (d *Directory) Load(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	usersRaw, usersOK, usersErr := d.read(ctx, usersKey)
	sessRaw, sessOK, sessErr := d.read(ctx, userKey)
	if usersErr != nil || sessErr != nil {
		return
	}
	d.loaded = true

	if usersOK {
		var users []User
		if err := json.Unmarshal([]byte(usersRaw), &users); err != nil {
			d.discardCorrupt(ctx, usersKey, err)
		} else {
			d.users = users
			d.metrics.Hydration(storeName, kit.HydrationLoaded)
		}
	}

	if sessOK {
		var u User
		if err := json.Unmarshal([]byte(sessRaw), &u); err != nil {
			d.discardCorrupt(ctx, userKey, err)
		} else {
			d.current = &u
		}
	}
}

func (d *Directory) read(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := d.port.Get(ctx, key)
	if err != nil {
		d.log.Error("auth hydration read failed", zap.String("key", key), zap.Error(err))
		d.metrics.Hydration(storeName, kit.HydrationReadError)
		return "", false, err
	}
	if !ok {
		d.metrics.Hydration(storeName, kit.HydrationEmpty)
	}
	return raw, ok, nil
}

func (d *Directory) discardCorrupt(ctx context.Context, key string, cause error) {
	d.log.Warn("discarding corrupt auth blob", zap.String("key", key), zap.Error(cause))
	d.metrics.Hydration(storeName, kit.HydrationCorrupt)
	if err := d.port.Delete(ctx, key); err != nil {
		d.log.Error("delete corrupt auth blob failed", zap.String("key", key), zap.Error(err))
	}
}

func (d *Directory) Subscribe(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, fn)
}

// SignUp registers a new identity and signs it in. Emails are compared
// by exact string equality; a duplicate leaves both the users list and
// the session untouched. The password is validated by the caller and
// deliberately not stored.
func (d *Directory) SignUp(name, email, password string) (User, error) {
	time.Sleep(d.latency)

	d.mu.Lock()

	for _, u := range d.users {
		if u.Email == email {
			d.mu.Unlock()
			return User{}, ErrDuplicateEmail
		}
	}

	u := User{
		ID:        "u_" + uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	d.users = append(d.users, u)
	d.current = &u
	d.metrics.Mutation(storeName, "sign_up")
	d.persistUsersLocked()
	d.persistSessionLocked()
	d.mu.Unlock()

	d.notify()
	return u, nil
}

// SignIn makes the user registered under email the current session.
// The password is accepted but never checked; the stored record has no
// password field at all.
func (d *Directory) SignIn(email, password string) (User, error) {
	time.Sleep(d.latency)

	d.mu.Lock()

	var found *User
	for i := range d.users {
		if d.users[i].Email == email {
			found = &d.users[i]
			break
		}
	}
	if found == nil {
		d.mu.Unlock()
		return User{}, ErrNotFound
	}

	u := *found
	d.current = &u
	d.metrics.Mutation(storeName, "sign_in")
	d.persistSessionLocked()
	d.mu.Unlock()

	d.notify()
	return u, nil
}

// SignOut transitions to Anonymous unconditionally.
func (d *Directory) SignOut() {
	d.mu.Lock()
	d.current = nil
	d.metrics.Mutation(storeName, "sign_out")
	d.persistSessionLocked()
	d.mu.Unlock()

	d.notify()
}

// Current returns the session user, if any.
func (d *Directory) Current() (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.current == nil {
		return User{}, false
	}
	return *d.current, true
}

// Users returns the registered identities in registration order.
func (d *Directory) Users() []User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}

func (d *Directory) persistUsersLocked() {
	if !d.loaded {
		return
	}

	b, err := json.Marshal(d.users)
	if err != nil {
		d.log.Error("marshal users failed", zap.Error(err))
		return
	}
	if err := d.port.Set(context.Background(), usersKey, string(b)); err != nil {
		d.log.Error("persist users failed", zap.Error(err))
	}
}

// persistSessionLocked mirrors the session pointer: the blob holds the
// current user, or is removed entirely when the session is Anonymous.
func (d *Directory) persistSessionLocked() {
	if !d.loaded {
		return
	}

	if d.current == nil {
		if err := d.port.Delete(context.Background(), userKey); err != nil {
			d.log.Error("remove session blob failed", zap.Error(err))
		}
		return
	}

	b, err := json.Marshal(d.current)
	if err != nil {
		d.log.Error("marshal session failed", zap.Error(err))
		return
	}
	if err := d.port.Set(context.Background(), userKey, string(b)); err != nil {
		d.log.Error("persist session failed", zap.Error(err))
	}
}

func (d *Directory) notify() {
	d.mu.RLock()
	subs := d.subs
	d.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}

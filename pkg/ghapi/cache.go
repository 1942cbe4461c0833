package ghapi

import "sync"

// CurrentUserCache holds the authenticated user once it has been fetched.
// It is owned by the caller and passed to UsersClient.Current; the zero value
// is an empty cache ready for use.
type CurrentUserCache struct {
	mutex sync.RWMutex
	user  *User
}

// NewCurrentUserCache creates an empty cache.
func NewCurrentUserCache() *CurrentUserCache {
	return &CurrentUserCache{}
}

// Get returns a copy of the cached user.
func (c *CurrentUserCache) Get() (*User, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.user == nil {
		return nil, false
	}

	user := *c.user

	return &user, true
}

// Set stores a copy of user. A nil user clears the cache.
func (c *CurrentUserCache) Set(user *User) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if user == nil {
		c.user = nil

		return
	}

	stored := *user
	c.user = &stored
}

// Clear drops the cached user so the next fetch goes to the server.
func (c *CurrentUserCache) Clear() {
	c.Set(nil)
}

package helpers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/shopfront/paypal.express.api/config"
)

// Flash kinds understood by the storefront
const (
	FlashError          = "error"
	FlashNotice         = "notice"
	FlashOrderCompleted = "order_completed"
)

const sessionOrderKey = "order_id"

// SessionStore reads and writes the storefront session shared with the rest of the shop
type SessionStore struct {
	Store sessions.Store
	Name  string
}

// NewSessionStore creates a cookie backed session store. Cookies cannot be read or written
// without a secret, so an empty one is an error.
func NewSessionStore(cfg *config.Config) (*SessionStore, error) {
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret is not set for session [%s]", cfg.SessionName)
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode

	return &SessionStore{Store: store, Name: cfg.SessionName}, nil
}

func (s *SessionStore) session(r *http.Request) (*sessions.Session, error) {
	session, err := s.Store.Get(r, s.Name)
	if err != nil {
		return session, fmt.Errorf("error reading session [%s]: [%v]", s.Name, err)
	}
	return session, nil
}

// OrderID returns the id of the shopper's current order, or an empty string
func (s *SessionStore) OrderID(r *http.Request) (string, error) {
	session, err := s.session(r)
	if err != nil {
		return "", err
	}
	id, _ := session.Values[sessionOrderKey].(string)
	return id, nil
}

// SetOrderID makes the order the shopper's current order
func (s *SessionStore) SetOrderID(w http.ResponseWriter, r *http.Request, id string) error {
	session, err := s.session(r)
	if err != nil {
		return err
	}
	session.Values[sessionOrderKey] = id
	return session.Save(r, w)
}

// ClearOrder forgets the shopper's current order. The change is written by Save.
func (s *SessionStore) ClearOrder(r *http.Request) error {
	session, err := s.session(r)
	if err != nil {
		return err
	}
	delete(session.Values, sessionOrderKey)
	return nil
}

// AddFlash queues a message for the next page the shopper sees. The change is written by Save.
func (s *SessionStore) AddFlash(r *http.Request, kind, message string) error {
	session, err := s.session(r)
	if err != nil {
		return err
	}
	session.AddFlash(message, kind)
	return nil
}

// Flashes returns and removes the queued messages of a kind
func (s *SessionStore) Flashes(w http.ResponseWriter, r *http.Request, kind string) ([]string, error) {
	session, err := s.session(r)
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, flash := range session.Flashes(kind) {
		if message, ok := flash.(string); ok {
			messages = append(messages, message)
		}
	}
	return messages, session.Save(r, w)
}

// Save writes the session cookie. It must be called before the response header is written.
func (s *SessionStore) Save(w http.ResponseWriter, r *http.Request) error {
	session, err := s.session(r)
	if err != nil {
		return err
	}
	return session.Save(r, w)
}

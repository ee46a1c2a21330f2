// Package generator produces synthetic credentials from a database of
// type-specific patterns. Generation is pure data synthesis with no
// concurrency of its own; a single Generator is safe to share across the
// worker pool that executes generation tasks.
package generator

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yassine-ta/credential-forge/internal/util"
)

// maxUniqueAttempts bounds the regeneration loop when a candidate collides
// with an earlier credential of the same session.
const maxUniqueAttempts = 10

// ErrSpaceExhausted is returned when every regeneration attempt collided with
// an earlier credential of the session. Reachable only with custom patterns
// whose value space is tiny.
var ErrSpaceExhausted = errors.New("generator: credential space exhausted")

// Credential is one generated credential.
type Credential struct {
	// Type is the credential type the value was generated for
	Type string `json:"type" yaml:"type"`

	// Value is the synthesized credential string
	Value string `json:"value" yaml:"value"`
}

// Stats tracks what a Generator has produced so far.
type Stats struct {
	// Total counts every successfully generated credential
	Total uint64 `json:"total" yaml:"total"`

	// ByType breaks Total down per credential type
	ByType map[string]uint64 `json:"byType" yaml:"byType"`

	// Errors counts failed generation attempts
	Errors uint64 `json:"errors" yaml:"errors"`
}

// Generator synthesizes credentials from patterns. All methods are safe for
// concurrent use; generated values are unique within one Generator's
// lifetime.
type Generator struct {
	patterns map[string]Pattern
	logger   *slog.Logger

	mu     sync.Mutex
	seen   map[string]struct{}
	total  uint64
	byType map[string]uint64
	errors uint64
}

// New creates a generator with the built-in pattern set. Custom patterns
// merge over the built-ins: a matching name replaces the built-in shape, a
// new name adds a type.
func New(custom map[string]Pattern, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}

	patterns := builtinPatterns()
	for name, p := range custom {
		if p.Kind == "" {
			p.Kind = KindRandom
		}
		patterns[name] = p
	}

	return &Generator{
		patterns: patterns,
		logger:   logger,
		seen:     make(map[string]struct{}),
		byType:   make(map[string]uint64),
	}
}

// Generate synthesizes one credential of the given type.
func (g *Generator) Generate(credType string) (Credential, error) {
	pattern, ok := g.patterns[credType]
	if !ok {
		g.recordError()
		return Credential{}, util.WrapTypeError(credType, util.ErrUnknownType)
	}

	value, err := g.uniqueValue(pattern)
	if err != nil {
		g.recordError()
		return Credential{}, fmt.Errorf("generating %s: %w", credType, err)
	}

	g.mu.Lock()
	g.total++
	g.byType[credType]++
	g.mu.Unlock()

	g.logger.Debug("credential generated", "type", credType)
	return Credential{Type: credType, Value: value}, nil
}

// uniqueValue synthesizes until the candidate has not been produced before in
// this session, claiming it in the seen set before returning. With the body
// lengths in use collisions are essentially theoretical, but short custom
// patterns can exhaust their value space; that fails with ErrSpaceExhausted
// rather than handing out a duplicate.
func (g *Generator) uniqueValue(p Pattern) (string, error) {
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		value, err := g.synthesize(p)
		if err != nil {
			return "", err
		}

		g.mu.Lock()
		_, dup := g.seen[value]
		if !dup {
			g.seen[value] = struct{}{}
		}
		g.mu.Unlock()

		if !dup {
			return value, nil
		}
	}

	return "", ErrSpaceExhausted
}

func (g *Generator) recordError() {
	g.mu.Lock()
	g.errors++
	g.mu.Unlock()
}

// Types returns the available credential type names, sorted.
func (g *Generator) Types() []string {
	types := make([]string, 0, len(g.patterns))
	for name := range g.patterns {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// Has reports whether the generator knows the given credential type.
func (g *Generator) Has(credType string) bool {
	_, ok := g.patterns[credType]
	return ok
}

// Pattern returns the pattern registered for a credential type.
func (g *Generator) Pattern(credType string) (Pattern, bool) {
	p, ok := g.patterns[credType]
	return p, ok
}

// Stats returns a snapshot of the generation counters.
func (g *Generator) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	byType := make(map[string]uint64, len(g.byType))
	for k, v := range g.byType {
		byType[k] = v
	}

	return Stats{Total: g.total, ByType: byType, Errors: g.errors}
}

func (g *Generator) synthesize(p Pattern) (string, error) {
	switch p.Kind {
	case "", KindRandom:
		if p.Length <= 0 || p.Alphabet == "" {
			return "", fmt.Errorf("random pattern needs an alphabet and a positive length")
		}
		return p.Prefix + randomString(p.Alphabet, p.Length), nil
	case KindUUID:
		return p.Prefix + uuid.NewString(), nil
	case KindJWT:
		return synthesizeJWT()
	case KindDBURL:
		return synthesizeDBURL(), nil
	default:
		return "", fmt.Errorf("unknown pattern kind %q", p.Kind)
	}
}

func randomString(alphabet string, length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return sb.String()
}

// synthesizeJWT builds a structurally valid token: base64url-encoded header
// and payload with plausible claims, and a random 43-character signature.
func synthesizeJWT() (string, error) {
	algs := []string{"HS256", "RS256", "ES256", "HS512"}

	header := map[string]string{
		"alg": algs[rand.IntN(len(algs))],
		"typ": "JWT",
	}

	now := time.Now().Unix()
	payload := map[string]any{
		"sub": fmt.Sprintf("user_%d", 1000+rand.IntN(9000)),
		"iat": now - rand.Int64N(86400),
		"exp": now + 3600 + rand.Int64N(86400*7),
		"iss": "api.example.com",
		"jti": uuid.NewString(),
	}
	if rand.IntN(10) < 3 {
		roles := []string{"admin", "user", "moderator", "viewer"}
		payload["role"] = roles[rand.IntN(len(roles))]
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", err
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding
	signature := randomString(urlSafeChars, 43)

	return enc.EncodeToString(headerJSON) + "." + enc.EncodeToString(payloadJSON) + "." + signature, nil
}

func synthesizeDBURL() string {
	schemes := []string{"postgresql", "mysql", "mongodb"}
	ports := map[string]int{"postgresql": 5432, "mysql": 3306, "mongodb": 27017}

	scheme := schemes[rand.IntN(len(schemes))]
	user := "svc_" + randomString("abcdefghijklmnopqrstuvwxyz", 6)
	pass := randomString(alphaNum, 20)
	host := "db-" + randomString("abcdefghijklmnopqrstuvwxyz0123456789", 8) + ".internal"
	db := "app_" + randomString("abcdefghijklmnopqrstuvwxyz", 5)

	return fmt.Sprintf("%s://%s:%s@%s:%d/%s", scheme, user, pass, host, ports[scheme], db)
}

// Package keywords maps keyword names to the string library and binds the
// raw text arguments a test engine passes to typed parameters.
package keywords

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	mdwerror "github.com/msto63/strkw/foundation/core/error"
	"github.com/msto63/strkw/foundation/core/errors"
	"github.com/msto63/strkw/foundation/core/log"
	"github.com/msto63/strkw/foundation/utils/stringx"
)

// Kind selects how a raw argument is converted
type Kind string

const (
	KindString  Kind = "string"
	KindIndex   Kind = "index"
	KindInteger Kind = "integer"
	KindBool    Kind = "bool"
)

// Parameter describes one keyword argument
type Parameter struct {
	Name        string
	Kind        Kind
	Required    bool
	Default     string // used when the argument is not given; empty means none
	Description string
}

// Handler runs a keyword against the library with bound arguments
type Handler func(lib *stringx.Library, args Args) (interface{}, error)

// Definition describes a keyword
type Definition struct {
	Name        string
	Alias       string
	Family      string
	Description string
	Parameters  []Parameter
	Returns     string
	Examples    []string
	Handler     Handler
}

// Signature renders the parameter list, e.g. "string, start=0, end"
func (d *Definition) Signature() string {
	parts := make([]string, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		switch {
		case p.Default != "":
			parts = append(parts, p.Name+"="+p.Default)
		case p.Required:
			parts = append(parts, p.Name)
		default:
			parts = append(parts, p.Name+"=None")
		}
	}
	return strings.Join(parts, ", ")
}

func (d *Definition) parameter(name string) (int, bool) {
	for i, p := range d.Parameters {
		if p.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Options configures a Registry
type Options struct {
	Logger *log.Logger

	// SkipBuiltins leaves the registry empty
	SkipBuiltins bool
}

// Registry resolves keyword names and aliases to definitions. Lookups
// ignore case, spaces and underscores.
type Registry struct {
	definitions map[string]*Definition
	names       map[string]string
	aliases     map[string]string
	logger      *log.Logger
	mutex       sync.RWMutex
}

// New creates a registry holding the built-in string keywords
func New(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	r := &Registry{
		definitions: make(map[string]*Definition),
		names:       make(map[string]string),
		aliases:     make(map[string]string),
		logger:      opts.Logger.WithField("component", "keyword-registry"),
	}

	if !opts.SkipBuiltins {
		for _, def := range Builtins() {
			if err := r.Register(def); err != nil {
				return nil, fmt.Errorf("failed to register builtin keyword: %w", err)
			}
		}
	}

	r.logger.Debug("Keyword registry initialized", log.Fields{
		"keywordCount": len(r.definitions),
		"aliasCount":   len(r.aliases),
	})

	return r, nil
}

// Register adds a keyword and its alias
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return registrationError("", "definition cannot be nil")
	}
	if strings.TrimSpace(def.Name) == "" {
		return registrationError("", "keyword name cannot be empty")
	}
	if def.Handler == nil {
		return registrationError(def.Name, "keyword has no handler")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := Normalize(def.Name)
	if _, exists := r.names[key]; exists {
		return registrationError(def.Name, "keyword already registered")
	}

	r.definitions[def.Name] = def
	r.names[key] = def.Name

	if def.Alias != "" {
		if err := r.addAlias(def.Alias, def.Name); err != nil {
			delete(r.definitions, def.Name)
			delete(r.names, key)
			return err
		}
	}

	r.logger.Trace("Keyword registered", log.Fields{
		"keyword":    def.Name,
		"alias":      def.Alias,
		"parameters": len(def.Parameters),
	})

	return nil
}

// RegisterAlias makes alias resolve to the keyword name
func (r *Registry) RegisterAlias(alias, name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.names[Normalize(name)]; !exists {
		return errors.UnknownKeyword(name)
	}
	return r.addAlias(alias, r.names[Normalize(name)])
}

func (r *Registry) addAlias(alias, name string) error {
	key := Normalize(alias)
	if key == "" {
		return registrationError(name, "alias cannot be empty")
	}
	if _, exists := r.names[key]; exists {
		return registrationError(name, fmt.Sprintf("alias '%s' collides with a registered name", alias))
	}

	r.names[key] = name
	r.aliases[alias] = name
	return nil
}

// Lookup returns the definition registered under name or one of its aliases
func (r *Registry) Lookup(name string) (*Definition, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	canonical, exists := r.names[Normalize(name)]
	if !exists {
		return nil, errors.UnknownKeyword(name)
	}
	return r.definitions[canonical], nil
}

// Has reports whether name resolves to a keyword
func (r *Registry) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Names returns the sorted canonical keyword names
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all definitions sorted by name
func (r *Registry) Definitions() []*Definition {
	names := r.Names()

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	defs := make([]*Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, r.definitions[name])
	}
	return defs
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	aliases := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		aliases[k] = v
	}
	return aliases
}

// Normalize folds a keyword name for lookup: lowercase without spaces or
// underscores
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if r == ' ' || r == '_' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func registrationError(keyword, reason string) error {
	return errors.NewErrorBuilder(errors.ModuleKeywords).
		Operation("register").
		Message(reason).
		Code(mdwerror.CodeInvalidInput).
		Detail("keyword", keyword).
		Build()
}

package msgcat

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/jaminalder/codex-gess/internal/domain"
	yaml "gopkg.in/yaml.v3"
)

//go:embed messages.en.yaml
var embedded []byte

// Catalog holds the user-facing texts as parsed templates keyed by dotted
// path ("move.rejected.too_far"). It is read-only once built.
type Catalog struct {
	tpl map[string]*template.Template
}

// New builds the catalog from the embedded English texts, then applies every
// *.yaml / *.yml file in overrideDir in name order. Overrides may only replace
// keys that exist in the embedded set, and no key may be overridden twice.
func New(overrideDir string) (*Catalog, error) {
	c := &Catalog{tpl: make(map[string]*template.Template)}
	if err := c.merge(embedded, "embedded", nil); err != nil {
		return nil, err
	}
	if strings.TrimSpace(overrideDir) == "" {
		return c, nil
	}
	names, err := overrideFiles(overrideDir)
	if err != nil {
		return nil, err
	}
	owner := make(map[string]string)
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(overrideDir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := c.merge(raw, name, owner); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Default returns the embedded catalog and panics if it does not parse.
func Default() *Catalog {
	c, err := New("")
	if err != nil {
		panic(err)
	}
	return c
}

func overrideFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read messages dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// merge parses src and stores its templates. A nil owner means the base set;
// otherwise owner records which file set each overridden key.
func (c *Catalog) merge(src []byte, file string, owner map[string]string) error {
	var tree map[string]any
	if err := yaml.Unmarshal(src, &tree); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}
	flat := make(map[string]string)
	if err := flatten(tree, "", flat); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	for key, text := range flat {
		if owner != nil {
			if _, known := c.tpl[key]; !known {
				return fmt.Errorf("%s: unknown message key %q", file, key)
			}
			if prev, dup := owner[key]; dup {
				return fmt.Errorf("duplicate override key %q in %s and %s", key, prev, file)
			}
			owner[key] = file
		}
		t, err := template.New(key).Option("missingkey=error").Parse(text)
		if err != nil {
			return fmt.Errorf("%s: key %q: %w", file, key, err)
		}
		c.tpl[key] = t
	}
	return nil
}

func flatten(node any, prefix string, out map[string]string) error {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if err := flatten(child, key, out); err != nil {
				return err
			}
		}
	case string:
		if prefix == "" {
			return fmt.Errorf("top-level string without a key")
		}
		out[prefix] = v
	case nil:
	default:
		return fmt.Errorf("value at %s must be a string, got %T", prefix, v)
	}
	return nil
}

// Render executes the template stored under key.
func (c *Catalog) Render(key string, data any) (string, error) {
	t, ok := c.tpl[strings.TrimSpace(key)]
	if !ok {
		return "", fmt.Errorf("template not found: %s", key)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Text renders key with data, falling back to the key itself on any error.
func (c *Catalog) Text(key string, data any) string {
	s, err := c.Render(key, data)
	if err != nil {
		return key
	}
	return s
}

// Rejection returns the text explaining why a move or resignation was refused.
func (c *Catalog) Rejection(err error) string {
	reason := domain.Reason(err)
	if reason == "" {
		reason = "unknown"
	}
	return c.Text("move.rejected."+reason, nil)
}

// Status describes where the game stands: whose turn it is, or who won and
// whether by resignation.
func (c *Catalog) Status(g *domain.Game) string {
	winner, over := g.Status().Winner()
	if !over {
		return c.Text("game.turn", map[string]string{"Player": g.Current().String()})
	}
	won := c.Text("game.won."+winner.String(), nil)
	if g.Resigned() {
		return c.Text("game.resigned", map[string]string{"Player": winner.Opponent().String()}) + " " + won
	}
	return won
}

// Rings reports how many rings each side still holds on b.
func (c *Catalog) Rings(b *domain.Board) string {
	return c.Text("game.rings", map[string]int{
		"Black": domain.RingCount(b, domain.PlayerBlack),
		"White": domain.RingCount(b, domain.PlayerWhite),
	})
}

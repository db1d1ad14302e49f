package config

import (
	"log"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AliasTable maps a free-text alias or abbreviation to the canonical forms
// the quoting reference data is stored under. Keys and values are matched
// lower-cased.
type AliasTable map[string][]string

// DefaultAliasTable covers the ports and container types the demo data
// ships with. Deployments extend it through aliases.yml.
func DefaultAliasTable() AliasTable {
	return AliasTable{
		"shanghai":    {"sha", "上海"},
		"shenzhen":    {"szx", "深圳"},
		"kaohsiung":   {"khh", "高雄"},
		"kh":          {"khh", "高雄"},
		"los angeles": {"lax", "洛杉磯"},
		"la":          {"lax", "洛杉磯"},
		"rotterdam":   {"rtm", "鹿特丹"},
		"hamburg":     {"ham", "漢堡"},
		"20ft":        {"20gp"},
		"40ft":        {"40gp"},
		"high cube":   {"40hq"},
	}
}

// Canonicals returns the canonical forms for alias, or nil.
func (t AliasTable) Canonicals(alias string) []string {
	return t[strings.ToLower(alias)]
}

// Aliases returns the alias keys in a stable order.
func (t AliasTable) Aliases() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AliasTableHolder hands out the current alias table. The table is loaded
// once at startup and swapped atomically on config file changes; request
// handlers never mutate it.
type AliasTableHolder struct {
	current atomic.Value // holds AliasTable
}

func NewAliasTableHolder() (*AliasTableHolder, error) {
	v := viper.New()

	v.SetConfigName("aliases")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/seaquote")
	v.AddConfigPath(".")

	holder := &AliasTableHolder{}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		holder.current.Store(DefaultAliasTable())
		return holder, nil
	}

	table, err := decodeAliasTable(v)
	if err != nil {
		return nil, err
	}
	holder.current.Store(table)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := decodeAliasTable(v)
		if err != nil {
			log.Printf("[aliases] reload failed: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[aliases] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticAliasTableHolder wraps a fixed table that never reloads. Used
// by tests and by deployments without an aliases.yml.
func NewStaticAliasTableHolder(table AliasTable) *AliasTableHolder {
	h := &AliasTableHolder{}
	h.current.Store(table)
	return h
}

func (h *AliasTableHolder) Get() AliasTable {
	return h.current.Load().(AliasTable)
}

func decodeAliasTable(v *viper.Viper) (AliasTable, error) {
	var raw map[string][]string
	if err := v.UnmarshalKey("aliases", &raw); err != nil {
		return nil, err
	}

	table := make(AliasTable, len(raw))
	for alias, canonicals := range raw {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" || len(canonicals) == 0 {
			continue
		}
		forms := make([]string, 0, len(canonicals))
		for _, c := range canonicals {
			c = strings.TrimSpace(c)
			if c != "" {
				forms = append(forms, c)
			}
		}
		if len(forms) > 0 {
			table[alias] = forms
		}
	}
	if len(table) == 0 {
		table = DefaultAliasTable()
	}
	return table, nil
}

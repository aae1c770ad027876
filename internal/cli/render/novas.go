package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

// NovaListItem is the structured form of one nova listing row
type NovaListItem struct {
	Name         string `json:"name" yaml:"name"`
	DaoAddress   string `json:"daoAddress" yaml:"daoAddress"`
	Archetype    string `json:"archetype" yaml:"archetype"`
	Market       string `json:"market" yaml:"market"`
	Members      int    `json:"members" yaml:"members"`
	Prestige     int    `json:"prestige" yaml:"prestige"`
	Roles        int    `json:"roles" yaml:"roles"`
	ActiveQuests int    `json:"activeQuests" yaml:"activeQuests"`
}

// NovasRenderer renders the nova listing
type NovasRenderer struct {
	palette
	out io.Writer
}

// NewNovasRenderer creates a new novas renderer
func NewNovasRenderer(out io.Writer, color bool) *NovasRenderer {
	return &NovasRenderer{
		palette: palette{out: out, color: color},
		out:     out,
	}
}

// Items converts the listing into its structured form
func (r *NovasRenderer) Items(result *usecase.ListNovasResult) []NovaListItem {
	return lo.Map(result.Novas, func(s usecase.NovaSummary, _ int) NovaListItem {
		return NovaListItem{
			Name:         s.Nova.Name,
			DaoAddress:   s.Nova.DaoAddress.Hex(),
			Archetype:    s.Nova.ArchetypeLabel(),
			Market:       s.Nova.MarketLabel(),
			Members:      s.Nova.Properties.Members,
			Prestige:     s.Nova.Properties.Prestige,
			Roles:        len(s.Nova.Properties.Roles),
			ActiveQuests: s.ActiveQuests,
		}
	})
}

// RenderList renders the novas as a table
func (r *NovasRenderer) RenderList(result *usecase.ListNovasResult) error {
	if len(result.Novas) == 0 {
		fmt.Fprintln(r.out, "No novas found")
		return nil
	}

	t := newTable(table.Row{"Name", "DAO", "Archetype", "Market", "Members", "Prestige", "Roles", "Active Quests"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	for _, item := range r.Items(result) {
		active := strconv.Itoa(item.ActiveQuests)
		if item.ActiveQuests > 0 {
			active = r.ok(active)
		}
		t.AppendRow(table.Row{
			r.paint(headerStyle, item.Name),
			r.paint(addressStyle, item.DaoAddress),
			item.Archetype,
			item.Market,
			item.Members,
			item.Prestige,
			item.Roles,
			active,
		})
	}

	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintf(r.out, "\n%d novas\n", result.Total)
	return nil
}

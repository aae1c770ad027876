package models

import (
	"github.com/ethereum/go-ethereum/common"
)

// Nova is a DAO with a quest-based onboarding flow, as returned by the listing API
type Nova struct {
	Name                   string         `json:"name" yaml:"name"`
	Image                  string         `json:"image" yaml:"image"`
	Admin                  common.Address `json:"admin" yaml:"admin"`
	DaoAddress             common.Address `json:"daoAddress" yaml:"daoAddress"`
	OnboardingQuestAddress common.Address `json:"onboardingQuestAddress" yaml:"onboardingQuestAddress"`
	Properties             NovaProperties `json:"properties" yaml:"properties"`
}

// NovaProperties holds the metadata-backed part of a Nova
type NovaProperties struct {
	Description string     `json:"description" yaml:"description"`
	Image       string     `json:"image" yaml:"image"`
	Archetype   int        `json:"archetype" yaml:"archetype"`
	Market      int        `json:"market" yaml:"market"`
	Members     int        `json:"members" yaml:"members"`
	Prestige    int        `json:"prestige" yaml:"prestige"`
	Quests      []Quest    `json:"quests" yaml:"quests"`
	Roles       []Role     `json:"roles" yaml:"roles"`
	RolesSets   []RolesSet `json:"rolesSets,omitempty" yaml:"rolesSets,omitempty"`
	Socials     []Social   `json:"socials,omitempty" yaml:"socials,omitempty"`
}

// Role is a role a quest grants on completion
type Role struct {
	ID       int    `json:"id" yaml:"id"`
	RoleName string `json:"roleName" yaml:"roleName"`
}

// RolesSet groups the roles of a Nova
type RolesSet struct {
	RoleSetName string `json:"roleSetName" yaml:"roleSetName"`
	Roles       []Role `json:"roles" yaml:"roles"`
}

// Social is a community link shown on the Nova details page
type Social struct {
	Type string `json:"type" yaml:"type"`
	Link string `json:"link" yaml:"link"`
}

// RoleName returns the name of the role with the given id.
// The first roles set is searched before the flat roles list; "N/A" when absent.
func (n *Nova) RoleName(roleID int) string {
	if len(n.Properties.RolesSets) > 0 {
		for _, r := range n.Properties.RolesSets[0].Roles {
			if r.ID == roleID {
				return r.RoleName
			}
		}
	}
	for _, r := range n.Properties.Roles {
		if r.ID == roleID {
			return r.RoleName
		}
	}
	return "N/A"
}

// FindQuest returns the quest with the given id
func (n *Nova) FindQuest(questID int) (*Quest, bool) {
	for i := range n.Properties.Quests {
		if n.Properties.Quests[i].QuestID == questID {
			return &n.Properties.Quests[i], true
		}
	}
	return nil, false
}

// ActiveQuests returns the quests flagged active
func (n *Nova) ActiveQuests() []Quest {
	var active []Quest
	for _, q := range n.Properties.Quests {
		if q.Active {
			active = append(active, q)
		}
	}
	return active
}

// Archetype labels indexed by archetype id
var NovaArchetypes = map[int]string{
	1: "Size",
	2: "Reputation",
	3: "Conviction",
	4: "Performance",
	5: "Growth",
}

// Market labels indexed by market id
var Markets = map[int]string{
	1: "Open-Source & Infra",
	2: "DeFi & Payments",
	3: "ReFi & Governance",
}

// ArchetypeLabel returns the display label of the Nova's archetype
func (n *Nova) ArchetypeLabel() string {
	if label, ok := NovaArchetypes[n.Properties.Archetype]; ok {
		return label
	}
	return "N/A"
}

// MarketLabel returns the display label of the Nova's market
func (n *Nova) MarketLabel() string {
	if label, ok := Markets[n.Properties.Market]; ok {
		return label
	}
	return "N/A"
}

// NovaTask is a community onboarding task listed on the Nova details page
type NovaTask struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Role        string `json:"role" yaml:"role"`
	EndDate     *Date  `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

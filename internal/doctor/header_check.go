package doctor

import (
	"bytes"
	"fmt"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/platform"
	"github.com/thoreinstein/aisync/pkg/frontmatter"
)

// assetHeader is the part of an agent or skill header every platform reads.
type assetHeader struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// HeaderSyntaxCheck verifies the YAML headers of agents and skills. Agents
// synced to Copilot whose header does not parse, or that have none, get a
// synthesized header holding only name and target.
type HeaderSyntaxCheck struct {
	agents []platform.Agent
}

var _ Check = (*HeaderSyntaxCheck)(nil)

// NewHeaderSyntaxCheck creates a header check over agents.
func NewHeaderSyntaxCheck(agents []platform.Agent) *HeaderSyntaxCheck {
	return &HeaderSyntaxCheck{agents: agents}
}

// Name returns the unique identifier for this check.
func (c *HeaderSyntaxCheck) Name() string {
	return "asset-headers"
}

// Category returns the grouping for this check.
func (c *HeaderSyntaxCheck) Category() string {
	return "assets"
}

// headerIssue describes one agent or skill whose header needs attention.
type headerIssue struct {
	Platform string `json:"platform"`
	Kind     string `json:"kind"`
	Item     string `json:"item"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

// Run parses the header of every agent and skill.
func (c *HeaderSyntaxCheck) Run() *CheckResult {
	var issues []headerIssue
	var unreadable []string
	var checked, invalid, missing int

	for _, a := range c.agents {
		support := a.Supports()
		if support.Agents {
			items, err := a.ReadAgents()
			if err != nil {
				unreadable = append(unreadable, a.Name()+"/agents")
			}
			for _, item := range items {
				checked++
				var h assetHeader
				_, err := frontmatter.MustParse(bytes.NewReader(item.Content), &h)
				switch {
				case errors.Is(err, frontmatter.ErrMissingFrontmatter):
					missing++
					issues = append(issues, headerIssue{Platform: a.Name(), Kind: "agent", Item: item.Name, Status: "missing"})
				case err != nil:
					invalid++
					issues = append(issues, headerIssue{Platform: a.Name(), Kind: "agent", Item: item.Name, Status: "invalid", Message: err.Error()})
				}
			}
		}
		if support.Skills {
			items, err := a.ReadSkills()
			if err != nil {
				unreadable = append(unreadable, a.Name()+"/skills")
			}
			for _, item := range items {
				checked++
				var h assetHeader
				if _, err := frontmatter.Parse(bytes.NewReader(item.Content), &h); err != nil {
					invalid++
					issues = append(issues, headerIssue{Platform: a.Name(), Kind: "skill", Item: item.Name, Status: "invalid", Message: err.Error()})
				}
			}
		}
	}

	details := map[string]any{
		"checked": checked,
		"invalid": invalid,
		"missing": missing,
	}
	if len(issues) > 0 {
		details["items"] = issues
	}
	if len(unreadable) > 0 {
		details["unreadable"] = unreadable
	}

	result := &CheckResult{Name: c.Name(), Category: c.Category(), Details: details}
	switch {
	case invalid > 0 || len(unreadable) > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d agent or skill header(s) do not parse; a sync to Copilot replaces agent headers", invalid)
		if len(unreadable) > 0 {
			result.Message = fmt.Sprintf("%d header(s) do not parse, %d asset set(s) unreadable", invalid, len(unreadable))
		}
		result.FixHint = "correct the YAML between the --- lines"
	case missing > 0:
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("%d agent(s) have no header; Copilot receives a synthesized one", missing)
	case checked == 0:
		result.Status = SeverityInfo
		result.Message = "no agents or skills found"
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d header(s) parse", checked)
	}
	return result
}

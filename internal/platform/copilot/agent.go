package copilot

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/pkg/frontmatter"
)

const (
	agentSuffix = ".agent.md"

	// TargetCopilot is the header value marking an agent for Copilot.
	TargetCopilot = "github-copilot"
)

// Header keys Copilot does not accept.
var droppedAgentKeys = []string{"model", "color"}

// AgentManager reads and writes custom agents.
type AgentManager struct {
	paths  *CopilotPaths
	logger *slog.Logger
}

// NewAgentManager creates a new AgentManager instance.
func NewAgentManager(paths *CopilotPaths, logger *slog.Logger) *AgentManager {
	return &AgentManager{paths: paths, logger: logger}
}

// Read returns the markdown files directly under agents/. The name drops a
// trailing .agent.md or .md.
func (m *AgentManager) Read() ([]model.Command, error) {
	found, err := assetfs.Walk(m.paths.AgentDir(), assetfs.WalkOptions{MaxDepth: 1, Match: assetfs.IsMarkdown})
	if err != nil {
		return nil, err
	}
	agents, err := assetfs.Load(found, func(f assetfs.Found) string { return AgentName(f.Base()) })
	if err != nil {
		return nil, err
	}
	return assetfs.MergeByName(agents, assetfs.NewestWins), nil
}

// AgentName maps an agents/ file name to its logical name.
func AgentName(file string) string {
	if name, ok := strings.CutSuffix(file, agentSuffix); ok {
		return name
	}
	return assetfs.Stem(file)
}

// Write stores each agent as agents/<name>.agent.md after Transform.
// Unchanged is decided against the transformed bytes.
func (m *AgentManager) Write(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	dir := m.paths.AgentDir()
	return assetfs.WriteSet(m.logger, items, opts, func(item model.Command) (assetfs.Target, error) {
		p, err := assetfs.Resolve(dir, assetfs.FlatNames, item.Name, agentSuffix)
		if err != nil {
			return assetfs.Target{}, err
		}
		content, err := Transform(item.Name, item.Content, m.logger)
		if err != nil {
			return assetfs.Target{}, err
		}
		return assetfs.Target{Path: p, Content: content}, nil
	})
}

// Transform rewrites an agent document for Copilot. The model and color
// header keys are removed and target is set when absent. A missing or
// unparsable header is replaced by one holding only name and target. The
// body is kept byte for byte. Transform is idempotent.
func Transform(name string, content []byte, logger *slog.Logger) ([]byte, error) {
	doc, err := frontmatter.ParseDocument(content)
	switch {
	case err != nil:
		logger.Warn("replacing unparsable agent header", "agent", name, "error", err)
		_, body, _ := frontmatter.Split(content)
		doc = synthesize(name, body)
	case !doc.HasHeader():
		doc = synthesize(name, doc.Body)
	default:
		var dropped []string
		for _, k := range doc.Keys() {
			if slices.Contains(droppedAgentKeys, k) {
				doc.Delete(k)
				dropped = append(dropped, k)
			}
		}
		if len(dropped) > 0 {
			logger.Debug("dropped agent header keys", "agent", name, "keys", dropped)
		}
		if !doc.Has("target") {
			doc.Set("target", TargetCopilot)
		}
	}

	out, err := doc.Bytes()
	if err != nil {
		return nil, errors.Wrapf(err, "encoding agent %q", name)
	}
	return out, nil
}

func synthesize(name string, body []byte) *frontmatter.Document {
	doc := frontmatter.NewDocument(body)
	doc.Set("name", name)
	doc.Set("target", TargetCopilot)
	return doc
}

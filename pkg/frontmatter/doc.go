// Package frontmatter parses and rewrites YAML frontmatter in Markdown
// files such as agent definitions and skills.
//
// Frontmatter is delimited by lines containing only "---" at the start and
// end of the header. The content between delimiters is YAML; everything
// after the closing delimiter is the body and is never modified.
//
// # Typed Parsing
//
//	type AgentMeta struct {
//		Name  string `yaml:"name"`
//		Model string `yaml:"model"`
//	}
//
//	var meta AgentMeta
//	body, err := frontmatter.Parse(r, &meta)
//
// # Header Rewriting
//
// [Document] keeps the header as an ordered YAML mapping so keys can be
// added, replaced or removed while the remaining keys keep their order:
//
//	doc, err := frontmatter.ParseDocument(content)
//	if err != nil {
//		return err
//	}
//	doc.Delete("model")
//	doc.Set("target", "github-copilot")
//	out, err := doc.Bytes()
//
// # Error Handling
//
//   - [ErrMissingFrontmatter]: content does not start with a delimited header
//   - [ErrInvalidHeader]: the header is not valid YAML or is not a mapping
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter

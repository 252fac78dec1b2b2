package manifest

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/quantmind-br/appcache-go/internal/domain"
	"github.com/quantmind-br/appcache-go/internal/utils"
)

const (
	// Signature is the mandatory first line of every manifest
	Signature = "CACHE MANIFEST"

	// DateLayout renders revision dates as millisecond ISO-8601 in UTC
	DateLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Section identifies the part of the manifest entries are added to
type Section int

const (
	SectionCache Section = iota
	SectionNetwork
	SectionFallback
	SectionSettings
	SectionUnknown
)

var sectionHeaders = map[string]Section{
	"CACHE:":    SectionCache,
	"NETWORK:":  SectionNetwork,
	"FALLBACK:": SectionFallback,
	"SETTINGS:": SectionSettings,
}

// String returns the header for s without the trailing colon
func (s Section) String() string {
	switch s {
	case SectionCache:
		return "CACHE"
	case SectionNetwork:
		return "NETWORK"
	case SectionFallback:
		return "FALLBACK"
	case SectionSettings:
		return "SETTINGS"
	}
	return "UNKNOWN"
}

var versionComment = regexp.MustCompile(`^#\s*rev:\s*(\d+)(?:\s+(.*?))?\s*$`)

// parser walks the manifest line by line; section is the only state
type parser struct {
	section     Section
	versionSeen bool
	version     Version
	lists       map[Section]*utils.OrderedSet[string]
	settings    utils.OrderedSet[Setting]
}

// Parse converts manifest text into a Manifest. Duplicate entries within a
// section are dropped, keeping the first occurrence.
func Parse(text string) (*Manifest, error) {
	text = strings.TrimPrefix(text, "\uFEFF")
	lines := strings.Split(text, "\n")

	if strings.TrimSuffix(lines[0], "\r") != Signature {
		return nil, domain.NewFormatError("", 1, ErrMissingSignature)
	}

	p := &parser{
		section: SectionCache,
		lists: map[Section]*utils.OrderedSet[string]{
			SectionCache:    utils.NewOrderedSet[string](),
			SectionNetwork:  utils.NewOrderedSet[string](),
			SectionFallback: utils.NewOrderedSet[string](),
		},
	}

	for i, raw := range lines[1:] {
		if err := p.line(strings.TrimSpace(raw)); err != nil {
			return nil, domain.NewFormatError("", i+2, err)
		}
	}

	return p.manifest(), nil
}

func (p *parser) line(line string) error {
	switch {
	case line == "":
		return nil
	case strings.HasPrefix(line, "#"):
		return p.comment(line)
	}

	if section, ok := sectionHeaders[line]; ok {
		p.section = section
		return nil
	}
	if isHeader(line) {
		p.section = SectionUnknown
		return nil
	}

	switch p.section {
	case SectionSettings:
		if setting, ok := ParseSetting(line); ok {
			p.settings.Add(setting)
		}
	case SectionUnknown:
		// entries of unrecognised sections are skipped
	default:
		p.lists[p.section].Add(line)
	}
	return nil
}

func (p *parser) comment(line string) error {
	if p.versionSeen {
		return nil
	}
	match := versionComment.FindStringSubmatch(line)
	if match == nil {
		return nil
	}

	revision, err := strconv.Atoi(match[1])
	if err != nil {
		return ErrRevisionRange
	}
	p.versionSeen = true
	p.version.Revision = revision
	p.version.Date = parseDate(match[2])
	return nil
}

func (p *parser) manifest() *Manifest {
	m := &Manifest{Version: p.version}
	if s := p.lists[SectionCache]; s.Len() > 0 {
		m.Cache = s.Items()
	}
	if s := p.lists[SectionNetwork]; s.Len() > 0 {
		m.Network = s.Items()
	}
	if s := p.lists[SectionFallback]; s.Len() > 0 {
		m.Fallback = s.Items()
	}
	if p.settings.Len() > 0 {
		m.Settings = p.settings.Items()
	}
	return m
}

// isHeader reports whether a trimmed line reads as a section header
func isHeader(line string) bool {
	return strings.HasSuffix(line, ":") && !strings.ContainsAny(line, " \t")
}

// ValidEntry reports whether entry can be written as a section line and
// read back unchanged. Blank lines, comments, header-like tokens and
// multi-line values cannot.
func ValidEntry(entry string) bool {
	entry = strings.TrimSpace(entry)
	switch {
	case entry == "":
		return false
	case strings.ContainsAny(entry, "\r\n"):
		return false
	case strings.HasPrefix(entry, "#"):
		return false
	case isHeader(entry):
		return false
	}
	return true
}

// parseDate accepts RFC 3339 with or without fractional seconds.
// Anything else yields the zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDate renders t the way Serialize writes it
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Serialize renders m in canonical form. Output depends only on m.
// Entries rejected by ValidEntry are left out so the result always
// parses back to the remaining entries.
func Serialize(m *Manifest) string {
	var b strings.Builder

	b.WriteString(Signature)
	b.WriteByte('\n')

	b.WriteString("# rev: ")
	b.WriteString(strconv.Itoa(m.Version.Revision))
	if !m.Version.Date.IsZero() {
		b.WriteByte(' ')
		b.WriteString(FormatDate(m.Version.Date))
	}
	b.WriteByte('\n')

	writeSection(&b, SectionCache, m.Cache, true)
	writeSection(&b, SectionNetwork, m.Network, false)
	writeSection(&b, SectionFallback, m.Fallback, false)

	settings := make([]string, len(m.Settings))
	for i, s := range m.Settings {
		settings[i] = string(s)
	}
	writeSection(&b, SectionSettings, settings, false)

	return b.String()
}

func writeSection(b *strings.Builder, section Section, entries []string, always bool) {
	if len(entries) == 0 && !always {
		return
	}
	b.WriteString(section.String())
	b.WriteString(":\n")
	for _, entry := range entries {
		if !ValidEntry(entry) {
			continue
		}
		b.WriteString(strings.TrimSpace(entry))
		b.WriteByte('\n')
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"portfolio-gallery-service/internal/core/domain"
	ports "portfolio-gallery-service/internal/core/ports/output"
	"portfolio-gallery-service/internal/core/services"
	"portfolio-gallery-service/internal/core/viewer"
)

type settledMsg struct{}

type model struct {
	catalog *services.CatalogService
	settled <-chan struct{}
	lang    string
	tr      ports.Translator

	filter  domain.FilterSelection
	visible []*domain.ValidatedArtwork
	cursor  int

	doc   *viewer.Document
	bus   *viewer.KeyBus
	modal *viewer.Modal

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int
}

func newModel(catalog *services.CatalogService, settled <-chan struct{}, lang string, tr ports.Translator) model {
	doc := viewer.NewDocument()
	bus := viewer.NewKeyBus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := model{
		catalog: catalog,
		settled: settled,
		lang:    lang,
		tr:      tr,
		filter:  domain.NewFilterSelection(),
		doc:     doc,
		bus:     bus,
		modal:   viewer.NewModal(catalog, doc, bus),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		width:   80,
		height:  24,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	if m.settled == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, waitSettled(m.settled))
}

func waitSettled(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return settledMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case settledMsg:
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.catalog.IsValidating() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.modal.Teardown()
			return m, tea.Quit
		}
		if m.modal.IsOpen() {
			if ev, ok := m.keys.viewerEvent(msg); ok {
				m.bus.Dispatch(ev)
			}
			return m, nil
		}
		return m.updateGrid(msg), nil
	}
	return m, nil
}

func (m model) updateGrid(msg tea.KeyMsg) model {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(m.visible) {
			p := m.visible[m.cursor]
			if err := m.modal.OpenProject(p); err != nil {
				log.WithError(err).WithField("artwork_id", p.ID).Warn("failed to open artwork viewer")
			}
		}
	case key.Matches(msg, m.keys.Category):
		c := nextOf(m.catalog.Categories(), m.filter.Category)
		if c == "" {
			c = domain.CategoryAll
		}
		m.filter.SelectCategory(c)
		m.refresh()
	case key.Matches(msg, m.keys.Year):
		years := make([]string, 0)
		for _, b := range m.catalog.YearBuckets() {
			years = append(years, b.Year)
		}
		m.filter.SelectYear(nextOf(years, m.filter.Year))
		m.refresh()
	case key.Matches(msg, m.keys.Clear):
		m.filter = domain.NewFilterSelection()
		m.refresh()
	}
	return m
}

// nextOf cycles through options, with the zero value standing for "none
// selected" before the first and after the last option.
func nextOf[T comparable](options []T, cur T) T {
	var zero T
	for i, o := range options {
		if o == cur {
			if i+1 < len(options) {
				return options[i+1]
			}
			return zero
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return zero
}

func (m *model) refresh() {
	m.visible = m.catalog.List(m.filter)
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

func (m model) label(c domain.Category) string {
	if c == "" {
		c = domain.CategoryAll
	}
	if m.tr == nil {
		return string(c)
	}
	return m.tr.Translate(m.lang, c.LabelKey())
}

func (m model) text(key, fallback string) string {
	if m.tr == nil {
		return fallback
	}
	if s := m.tr.Translate(m.lang, key); s != key {
		return s
	}
	return fallback
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.text("gallery.title", "Portfolio")))
	filter := m.label(m.filter.Category)
	if m.filter.Year != "" {
		filter += " · " + m.filter.Year
	}
	b.WriteString(filterStyle.Render(filter))
	if m.catalog.IsValidating() {
		b.WriteString("  " + warnStyle.Render(m.spinner.View()+" "+m.text("gallery.validating", "Checking media...")))
	}
	b.WriteString("\n\n")

	if m.modal.IsOpen() {
		b.WriteString(m.viewModal())
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView(m.keys.modalHelp()))
		return b.String()
	}

	if len(m.visible) == 0 {
		b.WriteString(metaStyle.Render(m.text("gallery.empty", "No works match this selection.")))
		b.WriteString("\n")
	}
	for i, a := range m.visible {
		line := fmt.Sprintf("%-32s %s", a.Title, metaStyle.Render(m.label(a.Category)+" · "+a.Year))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("› " + line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.gridHelp()))
	return b.String()
}

func (m model) viewModal() string {
	p := m.modal.CurrentProject()
	width := max(m.width-6, 20)

	var parts []string
	parts = append(parts, titleStyle.Render(p.Title))
	parts = append(parts, metaStyle.Render(m.label(p.Category)+" · "+p.Year))

	if p.IsVideo() {
		parts = append(parts, "▶ https://www.youtube.com/watch?v="+p.VideoID())
	} else if n := len(p.ValidImages); n > 0 {
		idx := m.modal.CurrentImageIndex()
		counter := fmt.Sprintf("%d / %d", idx+1, n)
		if tmpl := m.text("viewer.image_of", ""); tmpl != "" {
			counter = fmt.Sprintf(tmpl, idx+1, n)
		}
		parts = append(parts, p.ValidImages[idx], metaStyle.Render(counter))
	} else {
		parts = append(parts, p.ValidThumbnail)
	}

	if desc := renderMarkdown(p.Description, width); desc != "" {
		parts = append(parts, desc)
	}
	if p.ExternalLink != "" {
		parts = append(parts, metaStyle.Render(p.ExternalLink))
	}

	if related := services.RelatedProjects(p, m.catalog.Catalog()); len(related) > 0 {
		titles := make([]string, 0, len(related))
		for _, r := range related {
			titles = append(titles, r.Title)
		}
		parts = append(parts, metaStyle.Render(m.text("viewer.related", "Related projects")+": "+strings.Join(titles, ", ")))
	}

	return modalStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoscreen/internal/views"
)

type LearnLink struct {
	Title string
	URL   string
}

var learnLinks = []LearnLink{
	{Title: "Official Tutorial", URL: "https://reactnative.dev/docs/tutorial"},
	{Title: "Expo Learning", URL: "https://expo.dev/learn"},
	{Title: "Components Guide", URL: "https://reactnative.dev/docs/components-and-apis"},
}

const learnMarkdown = `# Learning Guide

## What is this screen?

A small todo list that lives in memory for as long as the screen is open.
Nothing is saved when you quit.

## What You Just Built

- the list keeps items in the order you added them
- one item at a time can be edited; switching items drops the unsaved draft
- deletes happen right away, the spinner is only a short visual cue
- every action reports back in the status line

## Next Steps to Learn

Pick a link below with j/k and press o to open it in your browser.

## Try These Features

- Add due dates to todos
- Save todos to device storage
- Add categories (work, personal)
- Add search functionality
- Add dark mode toggle

## Useful Commands

` + "```" + `
todoscreen                  start the screen
todoscreen run script.txt   replay palette commands headless
todoscreen --log-level debug --log-file todoscreen.log
` + "```" + `
`

func (m Model) handleLearnKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Learn.Cursor > 0 {
			m.Learn.Cursor--
		}
	case "down", "j":
		if m.Learn.Cursor < len(learnLinks)-1 {
			m.Learn.Cursor++
		}
	case "o", "enter":
		link := learnLinks[m.Learn.Cursor]
		if err := m.opener.Open(link.URL); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("could not open %s: %v", link.URL, err), IsError: true}
			m.log.WithError(err).WithField("url", link.URL).Warn("open link failed")
			return m, nil
		}
		m.Status = StatusBar{Text: fmt.Sprintf("opened %s", link.Title)}
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.learnViewport, cmd = m.learnViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) refreshLearnContent() {
	m.learnViewport.SetContent(views.RenderMarkdown(learnMarkdown, m.markdownStyle, m.learnViewport.Width))
}

func (m Model) renderLearnView() string {
	links := make([]views.LearnLinkData, 0, len(learnLinks))
	for i, l := range learnLinks {
		links = append(links, views.LearnLinkData{Title: l.Title, URL: l.URL, Selected: i == m.Learn.Cursor})
	}
	return views.RenderLearnPanel(views.LearnPanelData{
		ContentView: m.learnViewport.View(),
		Links:       links,
	})
}

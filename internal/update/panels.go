package update

import (
	"strings"
	"time"

	"github.com/sandeepkv93/todoscreen/internal/tasklist"
	"github.com/sandeepkv93/todoscreen/internal/views"
)

const maxNotifications = 40

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

// forwardNotices copies list notices newer than the last one seen into the
// shell's notification ring and the status bar.
func (m *Model) forwardNotices() {
	for _, n := range m.List.Notices() {
		if n.Seq <= m.lastNoticeSeq {
			continue
		}
		m.lastNoticeSeq = n.Seq
		m.Status = StatusBar{Text: n.Body, IsError: n.Level == tasklist.LevelError}
		m.push(Notification{Title: n.Title, Body: n.Body, Level: string(n.Level), At: n.At})
	}
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.push(Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	})
}

func (m *Model) push(n Notification) {
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		if err := m.notifier.Send(n); err != nil {
			m.log.WithError(err).Debug("desktop notification failed")
		}
	}
}

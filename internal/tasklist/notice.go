package tasklist

import "time"

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Seq increases by one for every notice the controller records.
type Notice struct {
	Seq   uint64
	Title string
	Body  string
	Level Level
	At    time.Time
}

const maxNotices = 40

func (c *Controller) notify(level Level, title, body string) {
	c.noticeSeq++
	n := Notice{
		Seq:   c.noticeSeq,
		Title: title,
		Body:  body,
		Level: level,
		At:    c.now().UTC(),
	}
	c.notices = append(c.notices, n)
	if len(c.notices) > maxNotices {
		c.notices = c.notices[len(c.notices)-maxNotices:]
	}
}

// notifyErr records the user-facing side of a command failure.
func (c *Controller) notifyErr(err error) error {
	kind, _ := KindOf(err)
	if kind == KindNoOp {
		c.notify(LevelInfo, "Info", UserMessage(err))
	} else {
		c.notify(LevelError, "Error", UserMessage(err))
	}
	return err
}

// Notices returns a copy of the most recent notifications, oldest first.
func (c *Controller) Notices() []Notice {
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

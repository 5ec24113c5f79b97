package bot

import (
	"Healthscan/core"
	"Healthscan/holder"
	"Healthscan/lib/sl"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Reply is the single outbound text bound to an event's reply token.
type Reply struct {
	ReplyToken string `json:"replyToken"`
	Text       string `json:"text"`
}

// ContentProvider downloads an attachment's bytes from the platform.
type ContentProvider interface {
	MessageContent(ctx context.Context, messageID string) (io.ReadCloser, error)
}

// Router turns one inbound platform event into at most one reply. All
// conversational state lives in the session manager; the router itself
// is stateless.
type Router struct {
	sessions *holder.Manager
	vision   core.VisionService
	content  ContentProvider
	log      *slog.Logger
}

func NewRouter(sessions *holder.Manager, vision core.VisionService, content ContentProvider, log *slog.Logger) *Router {
	return &Router{
		sessions: sessions,
		vision:   vision,
		content:  content,
		log:      log.With(sl.Module("router")),
	}
}

// HandleEvent dispatches by event and message type. A nil result means
// no reply is owed for this event.
func (r *Router) HandleEvent(ctx context.Context, event *linebot.Event) *Reply {
	if event.Type != linebot.EventTypeMessage || event.Source == nil {
		return nil
	}
	userID := event.Source.UserID

	switch message := event.Message.(type) {
	case *linebot.ImageMessage:
		return r.handleImage(ctx, userID, event.ReplyToken, message.ID)
	case *linebot.TextMessage:
		return r.handleText(ctx, userID, event.ReplyToken, message.Text)
	}
	return nil
}

func (r *Router) handleImage(ctx context.Context, userID, replyToken, messageID string) *Reply {
	r.log.With(sl.User(userID), slog.String("message", messageID)).Info("received image")

	content, err := r.content.MessageContent(ctx, messageID)
	if err != nil {
		r.log.Error("downloading image", sl.User(userID), sl.Err(err))
		return &Reply{ReplyToken: replyToken, Text: imageErrorText}
	}
	defer func() {
		if err := content.Close(); err != nil {
			r.log.Error("closing content stream", sl.Err(err))
		}
	}()

	if err = r.sessions.StoreImage(userID, messageID, content); err != nil {
		r.log.Error("storing image", sl.User(userID), sl.Err(err))
		return &Reply{ReplyToken: replyToken, Text: imageErrorText}
	}
	return &Reply{ReplyToken: replyToken, Text: imageReceivedText}
}

func (r *Router) handleText(ctx context.Context, userID, replyToken, text string) *Reply {
	text = strings.TrimSpace(text)

	// commands win over the has-image check, so clear works with no image
	switch ParseCommand(text) {
	case CommandStart:
		return &Reply{ReplyToken: replyToken, Text: welcomeText}
	case CommandClear:
		r.sessions.Clear(userID)
		return &Reply{ReplyToken: replyToken, Text: clearedText}
	}

	imageBase64, ok := r.sessions.Image(userID)
	if !ok {
		return &Reply{ReplyToken: replyToken, Text: noImageText}
	}

	logText := text
	if len(logText) > 50 {
		logText = logText[:50] + "..."
	}
	r.log.With(sl.User(userID), slog.String("question", logText)).Info("processing question")

	answer, err := r.vision.Ask(ctx, text, imageBase64)
	if err != nil {
		// the chat surface always gets a displayable answer
		r.log.Error("asking claude", sl.User(userID), sl.Err(err))
		return &Reply{ReplyToken: replyToken, Text: aiErrorText}
	}
	return &Reply{ReplyToken: replyToken, Text: answerPrefix + answer + answerDisclaimer}
}

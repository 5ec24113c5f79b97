package bot

import (
	"Healthscan/core"
	"Healthscan/holder"
	"Healthscan/lib/sl"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"golang.org/x/sync/errgroup"
)

// LineBot hosts the signed webhook and the health endpoint, and sends
// replies through the LINE messaging API.
type LineBot struct {
	conf   *core.Config
	log    *slog.Logger
	client *linebot.Client
	router *Router
	echo   *echo.Echo
}

func NewLineBot(conf *core.Config, log *slog.Logger, sessions *holder.Manager, vision core.VisionService, opts ...linebot.ClientOption) (*LineBot, error) {
	client, err := linebot.New(conf.LineChannelSecret, conf.LineChannelToken, opts...)
	if err != nil {
		return nil, err
	}

	b := &LineBot{
		conf:   conf,
		log:    log.With(sl.Module("linebot")),
		client: client,
	}
	b.router = NewRouter(sessions, vision, &lineContent{client: client}, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.POST("/webhook", b.webhook)
	e.GET("/", b.health)
	b.echo = e

	return b, nil
}

func (b *LineBot) Start() error {
	err := b.echo.Start(":" + b.conf.Port)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (b *LineBot) Stop(ctx context.Context) error {
	return b.echo.Shutdown(ctx)
}

// webhook handles one signed batch of platform events. Events run
// concurrently and each settles on its own: a failed reply marks the
// whole batch as 500 for redelivery, but must not stop the other
// events' replies from going out, so no shared cancellation here.
func (b *LineBot) webhook(c echo.Context) error {
	events, err := b.client.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			b.log.Warn("invalid webhook signature")
		} else {
			b.log.Error("parsing webhook", sl.Err(err))
		}
		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	results := make([]*Reply, len(events))
	var g errgroup.Group
	for i, event := range events {
		i, event := i, event
		g.Go(func() error {
			reply := b.router.HandleEvent(ctx, event)
			results[i] = reply
			if reply == nil {
				return nil
			}
			return b.reply(ctx, reply.ReplyToken, reply.Text)
		})
	}
	if err = g.Wait(); err != nil {
		b.log.Error("handling webhook batch", sl.Err(err))
		return c.NoContent(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (b *LineBot) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "LINE Health Bot is running!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (b *LineBot) reply(ctx context.Context, replyToken, text string) error {
	_, err := b.client.ReplyMessage(replyToken, linebot.NewTextMessage(text)).WithContext(ctx).Do()
	return err
}

// lineContent adapts the LINE content-retrieval API to ContentProvider.
type lineContent struct {
	client *linebot.Client
}

func (l *lineContent) MessageContent(ctx context.Context, messageID string) (io.ReadCloser, error) {
	res, err := l.client.GetMessageContent(messageID).WithContext(ctx).Do()
	if err != nil {
		return nil, err
	}
	return res.Content, nil
}

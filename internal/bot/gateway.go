package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swagateam/swagabot/internal/domain"
	"github.com/swagateam/swagabot/internal/usecase/like"
	"github.com/swagateam/swagabot/internal/usecase/matchmaker"
	"github.com/swagateam/swagabot/internal/usecase/profile"
)

const defaultOpTimeout = 5 * time.Second

// Gateway drives the per-chat conversation: it classifies inbound text by the
// chat's current state, calls into the usecases, and emits outbound messages
// through the transport's Sender. Per-chat serialization comes from the
// session store; distinct chats are handled fully in parallel.
type Gateway struct {
	profiles   *profile.ProfileUseCase
	matchmaker *matchmaker.MatchmakerUseCase
	likes      *like.LikeUseCase
	sessions   *SessionStore
	dedup      Deduper
	log        *zap.Logger
	opTimeout  time.Duration
}

func NewGateway(
	profiles *profile.ProfileUseCase,
	matchmaker *matchmaker.MatchmakerUseCase,
	likes *like.LikeUseCase,
	sessions *SessionStore,
	dedup Deduper,
	log *zap.Logger,
) *Gateway {
	return &Gateway{
		profiles:   profiles,
		matchmaker: matchmaker,
		likes:      likes,
		sessions:   sessions,
		dedup:      dedup,
		log:        log,
		opTimeout:  defaultOpTimeout,
	}
}

// HandleUpdate processes one inbound update. Internal failures are logged and
// answered with a transient-error message; the returned error only reports
// transport-level send failures.
func (g *Gateway) HandleUpdate(ctx context.Context, upd Update, sender Sender) error {
	if upd.Text == "" {
		return nil
	}

	if g.dedup != nil && upd.UpdateID != 0 {
		seen, err := g.dedup.Seen(ctx, upd.UpdateID)
		if err != nil {
			// Dedup is best effort: a broken guard must not block chats.
			g.log.Warn("dedup check failed", zap.Int64("update_id", upd.UpdateID), zap.Error(err))
		} else if seen {
			g.log.Debug("dropping redelivered update", zap.Int64("update_id", upd.UpdateID))
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.opTimeout)
	defer cancel()

	return g.sessions.Do(upd.ChatID, func(sess *Session) error {
		return g.dispatch(ctx, sess, upd, sender)
	})
}

func (g *Gateway) dispatch(ctx context.Context, sess *Session, upd Update, sender Sender) error {
	switch ParseCommand(upd.Text) {
	case CommandStart, CommandHelp:
		return g.handleStart(ctx, sess, upd, sender)
	case CommandUnknown:
		// Exactly one message, no transition, whatever the state.
		return sender.SendText(ctx, upd.ChatID, msgCommandNotFound)
	}

	g.log.Debug("handling update",
		zap.Int64("chat_id", upd.ChatID),
		zap.Stringer("state", sess.State),
	)

	switch sess.State {
	case StateStart, StateProfile:
		// Nothing but commands is understood before registration.
		return nil
	case StateListOptions:
		return g.handleMenu(ctx, sess, upd, sender)
	case StateViewProfiles:
		return g.handleViewing(ctx, sess, upd, sender)
	case StateInputAge:
		return g.handleAge(ctx, sess, upd, sender)
	case StateInputGender:
		return g.handleGender(ctx, sess, upd, sender)
	case StateInputDisplayedName:
		return g.handleTextField(ctx, sess, upd, sender, g.profiles.SetDisplayedName, msgAskDescription, StateInputDescription)
	case StateInputDescription:
		return g.handleTextField(ctx, sess, upd, sender, g.profiles.SetDescription, msgAskLocation, StateInputLocation)
	case StateInputLocation:
		if err := g.handleTextField(ctx, sess, upd, sender, g.profiles.SetLocation, "", StateListOptions); err != nil {
			return err
		}
		if sess.State == StateListOptions {
			return g.sendMenu(ctx, upd.ChatID, sender)
		}
		return nil
	default:
		return nil
	}
}

func (g *Gateway) handleStart(ctx context.Context, sess *Session, upd Update, sender Sender) error {
	username := upd.Username
	if username == "" {
		username = sess.Handle
	}
	if username == "" {
		return sender.SendText(ctx, upd.ChatID, msgGenericError)
	}

	sess.State = StateProfile
	sess.Handle = username

	prof, err := g.profiles.Register(ctx, upd.UserID, username)
	if err != nil {
		sess.State = StateStart
		return g.failure(ctx, upd.ChatID, sender, fmt.Errorf("register %q: %w", username, err))
	}

	welcome := fmt.Sprintf("Your user_id=%d, username=%s", prof.UserID, prof.Username)
	if err := sender.SendText(ctx, upd.ChatID, welcome); err != nil {
		return err
	}
	sess.State = StateListOptions
	return g.sendMenu(ctx, upd.ChatID, sender)
}

func (g *Gateway) sendMenu(ctx context.Context, chatID int64, sender Sender) error {
	if err := sender.SendText(ctx, chatID, msgMenuHeader); err != nil {
		return err
	}
	return sender.SendTextWithOptions(ctx, chatID, msgMenu, menuOptions)
}

func (g *Gateway) handleMenu(ctx context.Context, sess *Session, upd Update, sender Sender) error {
	choice, err := strconv.Atoi(strings.TrimSpace(upd.Text))
	if err != nil {
		return sender.SendText(ctx, upd.ChatID, msgGenericError)
	}
	switch choice {
	case 1:
		return g.showNext(ctx, sess, upd, sender)
	case 2:
		sess.State = StateInputAge
		return sender.SendText(ctx, upd.ChatID, msgAskAge)
	case 3:
		// Media handling belongs to the excluded transport layer.
		return sender.SendText(ctx, upd.ChatID, msgMediaUnsupported)
	case 4:
		sess.State = StateInputDisplayedName
		return sender.SendText(ctx, upd.ChatID, msgAskName)
	default:
		return sender.SendText(ctx, upd.ChatID, msgGenericError)
	}
}

func (g *Gateway) handleViewing(ctx context.Context, sess *Session, upd Update, sender Sender) error {
	switch strings.ToLower(strings.TrimSpace(upd.Text)) {
	case "like":
		proceed, err := g.handleLike(ctx, sess, upd, sender, false)
		if err != nil || !proceed {
			return err
		}
	case "superlike":
		proceed, err := g.handleLike(ctx, sess, upd, sender, true)
		if err != nil || !proceed {
			return err
		}
	}
	// Any input advances to the next candidate.
	return g.showNext(ctx, sess, upd, sender)
}

// handleLike records a like against the last shown candidate. It reports
// proceed=false when a failure reply was already delivered, so the caller
// must not pile a second reply on the same input.
func (g *Gateway) handleLike(ctx context.Context, sess *Session, upd Update, sender Sender, super bool) (bool, error) {
	if sess.LastShown == uuid.Nil {
		return true, nil
	}
	viewer, err := g.viewerProfile(ctx, sess, upd)
	if err != nil {
		return false, g.failure(ctx, upd.ChatID, sender, err)
	}
	result, err := g.likes.Like(ctx, viewer.ID, sess.LastShown, super)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return true, nil
		}
		return false, g.failure(ctx, upd.ChatID, sender, err)
	}
	if result.IsMatch {
		text := msgMatch
		if result.Matched != nil {
			text = msgMatch + " " + result.Matched.Card()
		}
		return true, sender.SendText(ctx, upd.ChatID, text)
	}
	return true, sender.SendText(ctx, upd.ChatID, msgLikeSent)
}

func (g *Gateway) showNext(ctx context.Context, sess *Session, upd Update, sender Sender) error {
	viewer, err := g.viewerProfile(ctx, sess, upd)
	if err != nil {
		return g.failure(ctx, upd.ChatID, sender, err)
	}

	candidate, err := g.matchmaker.SelectNext(ctx, viewer.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNoCandidates) || errors.Is(err, domain.ErrActivityNotFound) {
			sess.State = StateListOptions
			if serr := sender.SendText(ctx, upd.ChatID, msgNoCandidates); serr != nil {
				return serr
			}
			return g.sendMenu(ctx, upd.ChatID, sender)
		}
		return g.failure(ctx, upd.ChatID, sender, err)
	}

	sess.State = StateViewProfiles
	sess.LastShown = candidate.ID
	return sender.SendTextWithOptions(ctx, upd.ChatID, candidate.Card(), []string{"like", "superlike", "next"})
}

func (g *Gateway) handleAge(ctx context.Context, sess *Session, upd Update, sender Sender) error {
	age, err := strconv.Atoi(strings.TrimSpace(upd.Text))
	if err != nil {
		return sender.SendText(ctx, upd.ChatID, msgGenericError)
	}
	if err := g.profiles.SetAge(ctx, g.handle(sess, upd), age); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return sender.SendText(ctx, upd.ChatID, msgGenericError)
		}
		return g.failure(ctx, upd.ChatID, sender, err)
	}
	sess.State = StateInputGender
	return sender.SendTextWithOptions(ctx, upd.ChatID, msgAskGender, genderOptions)
}

func (g *Gateway) handleGender(ctx context.Context, sess *Session, upd Update, sender Sender) error {
	gender, err := domain.ParseGender(strings.TrimSpace(upd.Text))
	if err != nil {
		return sender.SendText(ctx, upd.ChatID, msgGenericError)
	}
	if err := g.profiles.SetGender(ctx, g.handle(sess, upd), gender); err != nil {
		return g.failure(ctx, upd.ChatID, sender, err)
	}
	sess.State = StateListOptions
	return g.sendMenu(ctx, upd.ChatID, sender)
}

type fieldSetter func(ctx context.Context, username, value string) error

func (g *Gateway) handleTextField(ctx context.Context, sess *Session, upd Update, sender Sender, set fieldSetter, nextPrompt string, next State) error {
	if err := set(ctx, g.handle(sess, upd), strings.TrimSpace(upd.Text)); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return sender.SendText(ctx, upd.ChatID, msgGenericError)
		}
		return g.failure(ctx, upd.ChatID, sender, err)
	}
	sess.State = next
	if nextPrompt == "" {
		return nil
	}
	return sender.SendText(ctx, upd.ChatID, nextPrompt)
}

func (g *Gateway) viewerProfile(ctx context.Context, sess *Session, upd Update) (*domain.Profile, error) {
	handle := g.handle(sess, upd)
	prof, err := g.profiles.GetByUsername(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("look up viewer %q: %w", handle, err)
	}
	if prof == nil {
		return nil, fmt.Errorf("viewer %q: %w", handle, domain.ErrProfileNotFound)
	}
	return prof, nil
}

func (g *Gateway) handle(sess *Session, upd Update) string {
	if sess.Handle != "" {
		return sess.Handle
	}
	return upd.Username
}

// failure logs the error and answers with a transient-failure message. One
// failing chat must never take the process down with it.
func (g *Gateway) failure(ctx context.Context, chatID int64, sender Sender, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	g.log.Error("update handling failed", zap.Int64("chat_id", chatID), zap.Error(err))
	return sender.SendText(ctx, chatID, msgTransient)
}

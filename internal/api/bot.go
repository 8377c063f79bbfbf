package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "ring-inspector/internal/application"
	"ring-inspector/internal/container"
	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/logging"
)

const (
	msgStart = `👋 Привет! Я бот для контроля формы кольцевых деталей.

📸 Отправьте /check, затем фото кольца, и я проверю его внешнюю и внутреннюю границу на вырезы и облой.

📋 Команды:
/check — начать проверку детали
/history — последние проверки
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /check и затем фото кольца
2️⃣ Бот найдёт внешнюю границу и отверстие
3️⃣ Вы получите результат: Good / Defective (Cut или Flash) и фото с отметкой дефекта

💡 Рекомендации:
• На фото должно быть ровно одно кольцо
• Кольцо должно быть темнее фона
• Снимайте сверху, при ровном освещении

📋 Команды:
/check — начать проверку
/history — последние проверки
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото кольца для проверки."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendPhoto       = "📸 Чтобы проверить деталь, отправьте /check и затем фото кольца."
	msgCheckFirst      = "📋 Сначала отправьте /check, затем фото кольца."
	msgBusy            = "⏳ Предыдущее фото ещё проверяется, дождитесь результата."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgEmptyHistory    = "📭 Проверок пока не было."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
)

// historySize сколько проверок показывает /history
const historySize = 5

// Bot представляет Telegram-бота
type Bot struct {
	api *tgbotapi.BotAPI
	app *container.Container
	log *logging.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container, log *logging.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info("authorized", "account", api.Self.UserName)

	return &Bot{
		api: api,
		app: services,
		log: log,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	users := b.app.UserService
	userID, chatID := msg.From.ID, msg.Chat.ID

	var err error
	switch msg.Command() {
	case "start":
		_, err = users.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "check":
		_, err = users.BeginCheck(ctx, userID, chatID)
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "cancel":
		_, err = users.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgCancelled)

	case "history":
		var records []entity.InspectionRecord
		records, err = b.app.InspectionService.History(ctx, userID, historySize)
		if err == nil {
			b.sendMessage(chatID, formatHistory(records))
		}

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}

	if err != nil {
		b.log.Error("command failed", "command", msg.Command(), "user", userID, "error", err)
	}
}

// handlePhoto проверяет фото с максимальным разрешением
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	// не скачиваем фото, которое всё равно не будет принято
	user, err := b.app.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.log.Error("error loading user", "user", msg.From.ID, "error", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}
	if user.State != entity.StateAwaitingPhoto {
		b.sendMessage(msg.Chat.ID, photoRejection(user.State))
		return
	}

	b.sendMessage(msg.Chat.ID, msgProcessing)

	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.log.Error("error downloading photo", "file", photo.FileID, "error", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}
	b.log.Debug("received image", "bytes", len(imageData), "file", photo.FileID)

	out, err := b.app.InspectionService.ProcessPhoto(ctx, msg.From.ID, msg.Chat.ID, photo.FileID, imageData)
	if errors.Is(err, app.ErrNotAwaitingPhoto) {
		b.sendMessage(msg.Chat.ID, photoRejection(entity.StateProcessing))
		return
	}
	if err != nil {
		b.log.Error("error inspecting photo", "file", photo.FileID, "error", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	if len(out.Highlighted) == 0 {
		b.sendMessage(msg.Chat.ID, out.Description)
		return
	}

	reply := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "result.jpg", Bytes: out.Highlighted})
	reply.Caption = out.Description
	if _, err := b.api.Send(reply); err != nil {
		b.log.Error("error sending photo", "chat", msg.Chat.ID, "error", err)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("error sending message", "chat", chatID, "error", err)
	}
}

// photoRejection ответ на фото, пришедшее не в состоянии ожидания фото
func photoRejection(state entity.UserState) string {
	if state == entity.StateProcessing {
		return msgBusy
	}
	return msgCheckFirst
}

// formatHistory список последних проверок, по строке на проверку
func formatHistory(records []entity.InspectionRecord) string {
	if len(records) == 0 {
		return msgEmptyHistory
	}

	var sb strings.Builder
	sb.WriteString("🗂 Последние проверки:")
	for i, rec := range records {
		line := string(rec.Result.Status)
		if detail := rec.Result.Text(); detail != "" {
			line += " — " + detail
		}
		fmt.Fprintf(&sb, "\n%d. %s %s", i+1, rec.CreatedAt.Format("02.01 15:04"), line)
	}
	return sb.String()
}

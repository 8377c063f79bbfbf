package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание фото кольца
	StateProcessing    UserState = "processing"     // Идёт проверка изображения
)

// User представляет пользователя бота
type User struct {
	ID             int64     // Telegram User ID
	ChatID         int64     // Telegram Chat ID
	State          UserState // Текущее состояние пользователя
	LastRecordID   string    // ID последней проверки
	InspectedCount int       // Сколько фото проверено
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// RecordInspection запоминает последнюю проверку пользователя
func (u *User) RecordInspection(recordID string) {
	u.LastRecordID = recordID
	u.InspectedCount++
}

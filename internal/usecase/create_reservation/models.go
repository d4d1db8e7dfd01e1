package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	Name  string           // Имя посетителя
	Phone string           // Контактный телефон (свободный формат, обычно NNN-NNNN-NNNN)
	Date  types.DateString // Выбранная дата
	Time  types.TimeString // Выбранный слот из дневного набора
	Memo  string           // Необязательная заметка
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        int64            // ID созданной брони
	Name      string           // Имя посетителя
	Phone     string           // Контактный телефон
	Date      types.DateString // Дата брони
	Time      types.TimeString // Слот
	Memo      string           // Заметка
	Status    string           // Статус (всегда pending при создании)
	CreatedAt time.Time        // Время создания
}

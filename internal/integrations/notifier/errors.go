package notifier

import "errors"

var (
	// ErrUnsupportedDriver возвращается для неизвестного драйвера уведомлений
	ErrUnsupportedDriver = errors.New("notifier: unsupported driver")

	// ErrInvalidConfig возвращается при неполной конфигурации драйвера
	ErrInvalidConfig = errors.New("notifier: invalid config")

	// ErrUnsupportedContact возвращается, когда драйвер не умеет доставлять на такой контакт
	ErrUnsupportedContact = errors.New("notifier: contact is not supported by driver")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("notifier: invalid response")

	// ErrDelivery возвращается, когда сообщение не удалось доставить
	ErrDelivery = errors.New("notifier: delivery failed")
)

package models

type HomeworkStatus string

const (
	StatusApproved  HomeworkStatus = "approved"
	StatusReviewing HomeworkStatus = "reviewing"
	StatusRejected  HomeworkStatus = "rejected"
)

// HomeworkVerdicts — закрытый набор статусов и их текстовых вердиктов.
// Любой статус вне этого набора считается ошибкой.
var HomeworkVerdicts = map[HomeworkStatus]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

type Homework struct {
	Name   string         `json:"homework_name"`
	Status HomeworkStatus `json:"status"`
}

type StatusResponse struct {
	Homeworks   []Homework `json:"homeworks"`
	CurrentDate int64      `json:"current_date"`
}

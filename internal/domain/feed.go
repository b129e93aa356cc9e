package domain

// FeedItem представляет отдельный выпуск в RSS-ленте подкаста.
// Отсутствующие в ленте поля остаются пустыми строками.
type FeedItem struct {
	ITunesImage    string
	Link           string
	Title          string
	ContentSnippet string
}

// Feed представляет RSS-ленту с метаданными канала и списком выпусков.
type Feed struct {
	Title       string
	Link        string
	Description string
	Items       []FeedItem
}

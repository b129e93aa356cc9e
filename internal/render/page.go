// Package render строит страницу подкастов из результата загрузки ленты.
package render

import (
	"fmt"
	"podcasts/internal/domain"
	"regexp"
	"strings"
)

const (
	PageTitle      = "Podcasts"
	BannerBody     = "Come listen to some inspiring stories of our vets transitioning into tech!"
	FailureMessage = "Something went wrong on our end..."

	playerWidth  = "80%"
	playerHeight = "65px"
)

var interviewSuffix = regexp.MustCompile(`(?i) interview`)

// Page - дерево элементов страницы подкастов.
// Если Alert не nil, Cards всегда пуст.
type Page struct {
	Head   Head
	Banner Banner
	Alert  *Alert
	Cards  []Card
}

type Head struct {
	Title string
}

type Banner struct {
	Title string
	Body  string
}

// Alert - сообщение об ошибке. Open означает, что его нельзя закрыть.
type Alert struct {
	Open    bool
	Message string
}

// Card - карточка одного выпуска. Key уникален в пределах страницы.
type Card struct {
	Key       string
	Image     Image
	Player    Player
	Accordion AccordionItem
}

type Image struct {
	Src string
	Alt string
}

type Player struct {
	Source   string
	Controls bool
	Width    string
	Height   string
}

type AccordionItem struct {
	Title   string
	Content string
}

// RenderPage строит страницу из результата загрузки.
// При ошибке выпуски игнорируются и показывается только Alert.
func RenderPage(result domain.LoadResult) Page {
	page := Page{
		Head:   Head{Title: PageTitle},
		Banner: Banner{Title: PageTitle, Body: BannerBody},
	}
	if result.Failed() {
		page.Alert = &Alert{Open: true, Message: FailureMessage}
		return page
	}
	page.Cards = make([]Card, 0, len(result.Episodes))
	for i, ep := range result.Episodes {
		page.Cards = append(page.Cards, Card{
			Key:   fmt.Sprintf("episode-%d", i+1),
			Image: Image{Src: ep.Image, Alt: Interviewee(ep.Name)},
			Player: Player{
				Source:   ep.Source,
				Controls: true,
				Width:    playerWidth,
				Height:   playerHeight,
			},
			Accordion: AccordionItem{Title: ep.Name, Content: ep.Story},
		})
	}
	return page
}

// Interviewee извлекает имя гостя из названия выпуска.
// Выпуски называются "Имя, part 1" или "Имя Interview".
func Interviewee(name string) string {
	name = interviewSuffix.ReplaceAllString(name, "")
	before, _, _ := strings.Cut(name, ",")
	return before
}

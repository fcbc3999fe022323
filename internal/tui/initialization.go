package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Константы, используемые при инициализации.
const (
	initUserCharLimit     = 128
	initUserWidth         = 30
	initPasswordCharLimit = 156
	initPasswordWidth     = 20
	initTitleCharLimit    = 256
	initTitleWidth        = 50
	initSearchCharLimit   = 128
	initSearchWidth       = 40
)

// initUsernameInput инициализирует поле ввода имени пользователя.
func initUsernameInput(placeholder string, focus bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = initUserCharLimit
	ti.Width = initUserWidth
	if focus {
		ti.Focus()
	}
	return ti
}

// initPasswordInput инициализирует поле ввода пароля.
func initPasswordInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = initPasswordCharLimit
	ti.Width = initPasswordWidth
	ti.EchoMode = textinput.EchoPassword
	return ti
}

// initTitleInput инициализирует поле ввода названия задачи.
func initTitleInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = initTitleCharLimit
	ti.Width = initTitleWidth
	return ti
}

// initSearchInput инициализирует поле ввода строки поиска.
func initSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Поиск по названию"
	ti.CharLimit = initSearchCharLimit
	ti.Width = initSearchWidth
	return ti
}

// initChoiceMenu инициализирует меню выбора "Войти или Зарегистрироваться?".
func initChoiceMenu() list.Model {
	items := []list.Item{
		choiceItem{title: "Войти", desc: "Вход в существующую учетную запись"},
		choiceItem{title: "Зарегистрироваться", desc: "Создание новой учетной записи"},
	}
	l := list.New(items, list.NewDefaultDelegate(), defaultListWidth, defaultListHeight)
	l.Title = "Todo: вход"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}

// initTodoList инициализирует основной компонент списка задач.
func initTodoList() list.Model {
	delegate := list.NewDefaultDelegate()
	// Настраиваем цвета для лучшей видимости
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("212")).
		BorderLeftForeground(lipgloss.Color("212"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("240")).
		BorderLeftForeground(lipgloss.Color("212"))

	l := list.New([]list.Item{}, delegate, defaultListWidth, defaultListHeight)
	l.Title = "Задачи"
	l.SetShowHelp(false) // Мы переопределяем справку
	l.SetShowStatusBar(true)
	// Фильтрация у компонента отключена: поиск и фильтр выполняются
	// сервером через параметры запроса.
	l.SetFilteringEnabled(false)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}

// initLoginInputs инициализирует поля экрана входа.
func initLoginInputs() []textinput.Model {
	inputs := make([]textinput.Model, numLoginFields)
	inputs[loginFieldUsername] = initUsernameInput("Имя пользователя", true)
	inputs[loginFieldPassword] = initPasswordInput("Пароль")
	return inputs
}

// initRegisterInputs инициализирует поля экрана регистрации.
func initRegisterInputs() []textinput.Model {
	inputs := make([]textinput.Model, numRegisterFields)
	inputs[registerFieldUsername] = initUsernameInput("Имя пользователя", true)
	inputs[registerFieldPassword] = initPasswordInput("Пароль (не короче 6 символов)")
	inputs[registerFieldConfirm] = initPasswordInput("Подтверждение пароля")
	return inputs
}

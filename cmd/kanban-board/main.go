package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultAPIURL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(30)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepLoadingBoard
	stepViewingBoard
)

type taskItem struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	StatusLabel string     `json:"status_label"`
	DueDate     *time.Time `json:"due_date"`
	Order       int        `json:"order"`
	Overdue     bool       `json:"overdue"`
}

type board struct {
	ToDo         []taskItem `json:"to_do"`
	InProgress   []taskItem `json:"in_progress"`
	Done         []taskItem `json:"done"`
	TotalCount   int        `json:"total_count"`
	OverdueCount int        `json:"overdue_count"`
}

type model struct {
	step         step
	apiURL       string
	email        string
	password     string
	token        string
	userName     string
	board        *board
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct {
	token string
	name  string
}
type boardLoadedMsg board
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	apiURL := os.Getenv("KANBAN_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return model{
		step:   stepEnteringEmail,
		apiURL: apiURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func login(apiURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", apiURL+"/api/v1/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach the server: %w", err)}
		}
		defer resp.Body.Close()

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}
		if resp.StatusCode != http.StatusOK || !env.Success {
			return errMsg{fmt.Errorf("login failed: %s", env.Message)}
		}

		var result struct {
			Token string `json:"token"`
			User  struct {
				Name string `json:"name"`
			} `json:"user"`
		}
		if err := json.Unmarshal(env.Data, &result); err != nil || result.Token == "" {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}

		return loginSuccessMsg{token: result.Token, name: result.User.Name}
	}
}

func fetchBoard(apiURL, token string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		req, _ := http.NewRequest("GET", apiURL+"/api/v1/tasks/kanban", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach the server: %w", err)}
		}
		defer resp.Body.Close()

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}
		if resp.StatusCode != http.StatusOK || !env.Success {
			return errMsg{fmt.Errorf("could not load board: %s", env.Message)}
		}

		var b board
		if err := json.Unmarshal(env.Data, &b); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}

		return boardLoadedMsg(b)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.step != stepEnteringEmail && m.step != stepEnteringPassword {
				m.quitting = true
				return m, tea.Quit
			}
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += msg.String()

		case "r":
			if m.step == stepViewingBoard {
				m.step = stepLoadingBoard
				m.message = "Refreshing..."
				return m, fetchBoard(m.apiURL, m.token)
			}
			m.currentInput += msg.String()

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "enter":
			switch m.step {
			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepLoggingIn
					m.message = "Logging in..."
					return m, login(m.apiURL, m.email, m.password)
				}
			}

		default:
			if m.step == stepEnteringEmail || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}
		}

	case loginSuccessMsg:
		m.token = msg.token
		m.userName = msg.name
		m.step = stepLoadingBoard
		m.message = successStyle.Render("Logged in as " + m.userName)
		return m, fetchBoard(m.apiURL, m.token)

	case boardLoadedMsg:
		b := board(msg)
		m.board = &b
		m.step = stepViewingBoard

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		if m.token == "" {
			m.step = stepEnteringEmail
		} else {
			m.step = stepViewingBoard
		}
	}

	return m, nil
}

func renderColumn(name string, tasks []taskItem) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", name, len(tasks))))
	s.WriteString("\n")
	for _, t := range tasks {
		line := fmt.Sprintf("• %s", t.Title)
		if t.Overdue {
			line = overdueStyle.Render(line + " !")
		}
		s.WriteString(line + "\n")
	}
	if len(tasks) == 0 {
		s.WriteString(dimStyle.Render("(empty)") + "\n")
	}
	return columnStyle.Render(s.String())
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Kanban Board\n\n"))

	switch m.step {
	case stepEnteringEmail:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepLoadingBoard:
		s.WriteString(m.message + "\n")

	case stepViewingBoard:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		if m.board != nil {
			columns := lipgloss.JoinHorizontal(lipgloss.Top,
				renderColumn("To Do", m.board.ToDo),
				renderColumn("In Progress", m.board.InProgress),
				renderColumn("Done", m.board.Done),
			)
			s.WriteString(columns)
			s.WriteString(fmt.Sprintf("\n%d tasks, %d overdue\n", m.board.TotalCount, m.board.OverdueCount))
		}
		s.WriteString(dimStyle.Render("\nr to refresh, q to quit\n"))
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

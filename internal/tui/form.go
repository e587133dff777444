// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/password"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	fieldService = iota
	fieldAccount
	fieldPassword
	fieldNotes
	fieldCount
)

type formModel struct {
	inputs    []textinput.Model
	focus     int
	editing   bool
	reveal    bool
	saving    bool
	err       error
	genLength int
}

func newFormModel(genLength int) formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldService].Placeholder = "github.com"
	inputs[fieldAccount].Placeholder = "user@example.com"
	inputs[fieldPassword].Placeholder = "ctrl+g to generate"
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldNotes].Placeholder = "optional"
	inputs[fieldService].Focus()

	if genLength <= 0 {
		genLength = password.DefaultLength
	}
	return formModel{inputs: inputs, genLength: genLength}
}

// newEditFormModel prefills the form from c. Service and account are the
// record's key and stay read-only; saving replaces the secret and notes.
func newEditFormModel(c models.Credential, genLength int) formModel {
	m := newFormModel(genLength)
	m.editing = true
	m.inputs[fieldService].SetValue(c.Service)
	m.inputs[fieldAccount].SetValue(c.Account)
	m.inputs[fieldPassword].SetValue(c.Secret)
	m.inputs[fieldNotes].SetValue(c.Notes)
	m.setFocus(fieldPassword)
	return m
}

func (m formModel) firstField() int {
	if m.editing {
		return fieldPassword
	}
	return fieldService
}

func (m *formModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *formModel) next() tea.Cmd {
	i := m.focus + 1
	if i >= fieldCount {
		i = m.firstField()
	}
	return m.setFocus(i)
}

func (m *formModel) prev() tea.Cmd {
	i := m.focus - 1
	if i < m.firstField() {
		i = fieldCount - 1
	}
	return m.setFocus(i)
}

func (m formModel) onLastField() bool {
	return m.focus == fieldCount-1
}

func (m *formModel) toggleReveal() {
	m.reveal = !m.reveal
	if m.reveal {
		m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
	} else {
		m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	}
}

func (m *formModel) generate() error {
	secret, err := password.Generate(m.genLength)
	if err != nil {
		return err
	}
	m.inputs[fieldPassword].SetValue(secret)
	m.err = nil
	return nil
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// values returns the trimmed service and account, the secret verbatim and
// the trimmed notes.
func (m formModel) values() (service, account, secret, notes string) {
	return strings.TrimSpace(m.inputs[fieldService].Value()),
		strings.TrimSpace(m.inputs[fieldAccount].Value()),
		m.inputs[fieldPassword].Value(),
		strings.TrimSpace(m.inputs[fieldNotes].Value())
}

func (m formModel) validate(ctx context.Context, v validators.Validator) error {
	service, account, secret, notes := m.values()
	return v.Validate(ctx, models.Credential{Service: service, Account: account, Secret: secret, Notes: notes})
}

func (m formModel) View() string {
	service, account, secret, _ := m.values()

	var b strings.Builder
	if m.editing {
		b.WriteString("Service   : " + service + "\n")
		b.WriteString("Account   : " + account + "\n")
	} else {
		b.WriteString("Service   : [ " + m.inputs[fieldService].View() + " ]\n")
		b.WriteString("Account   : [ " + m.inputs[fieldAccount].View() + " ]\n")
	}
	b.WriteString("Password  : [ " + m.inputs[fieldPassword].View() + " ]\n")
	b.WriteString("Strength  : " + renderStrength(secret, service, account) + "\n")
	b.WriteString("Notes     : [ " + m.inputs[fieldNotes].View() + " ]\n")

	if m.saving {
		b.WriteString("\nSaving...\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	title := "NEW ITEM"
	if m.editing {
		title = "EDIT: " + service
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+g: generate │ ctrl+r: show/hide │ enter: next/save │ ctrl+s: save │ esc: cancel")
}

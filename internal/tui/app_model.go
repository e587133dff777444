// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenConfirm
	screenBuildInfo
)

const statusTTL = 3 * time.Second

type appModel struct {
	ctx     context.Context
	vault   Vault
	updates <-chan []models.Credential
	opts    Options
	log     *logger.Logger

	screen  screen
	items   []models.Credential
	visible []models.Credential
	idx     int
	loading bool
	closed  bool

	search    textinput.Model
	searching bool

	// the detail view follows the business key, since an update mints a new ID
	detailKey models.BusinessKey
	reveal    bool

	form    formModel
	confirm confirmModel

	status    string
	statusSeq int
	errMsg    string

	// clipValue is what this session last put on the clipboard and has not
	// cleared yet.
	clipValue string
}

func newAppModel(ctx context.Context, vault Vault, updates <-chan []models.Credential, opts Options, log *logger.Logger) appModel {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System{}
	}
	if opts.Validator == nil {
		opts.Validator = validators.NewCredentialValidator()
	}

	search := textinput.New()
	search.Placeholder = "service, account or notes"
	search.Prompt = ""
	search.Width = 40

	return appModel{
		ctx:     ctx,
		vault:   vault,
		updates: updates,
		opts:    opts,
		log:     log,
		search:  search,
		loading: true,
	}
}

func (m appModel) Init() tea.Cmd {
	return waitForList(m.updates)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listUpdatedMsg:
		m.loading = false
		m.setItems(msg.items)
		return m, waitForList(m.updates)

	case listClosedMsg:
		m.closed = true
		return m, tea.Quit

	case addDoneMsg:
		m.form.saving = false
		if msg.res.Err != nil {
			m.form.err = msg.res.Err
			return m, nil
		}
		m.screen = screenList
		m.selectKey(msg.res.Record.Key())
		return m, m.setStatus(fmt.Sprintf("Saved %s @ %s", msg.res.Record.Account, msg.res.Record.Service))

	case deleteDoneMsg:
		if msg.res.Err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.res.Err)
			return m, nil
		}
		m.errMsg = ""
		if !msg.res.Applied {
			return m, m.setStatus("Item was already removed")
		}
		return m, m.setStatus("Deleted")

	case refreshDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("reload failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus("Reloaded")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case clearClipboardMsg:
		if msg.value == m.clipValue {
			m.clearPendingClipboard()
			m.clipValue = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}

	if m.screen == screenForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.updateInput(msg)
		return m, cmd
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenBuildInfo:
		if key.Matches(msg, keys.esc, keys.version, keys.quit) {
			m.screen = screenList
		}
		return m, nil
	default:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyFilter()
		}
	case key.Matches(msg, keys.newItem):
		m.form = newFormModel(m.opts.GeneratedLength)
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(msg, keys.enter):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.detailKey = item.Key()
		m.reveal = false
		m.screen = screenDetail
	case key.Matches(msg, keys.delete):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{target: item, back: screenList}
		m.screen = screenConfirm
	case key.Matches(msg, keys.refresh):
		return m, cmdRefresh(m.ctx, m.vault)
	case key.Matches(msg, keys.version):
		m.screen = screenBuildInfo
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.idx = 0
	m.applyFilter()
	return m, cmd
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.detailItem()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.reveal = false
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.copy):
		return m, m.copyToClipboard(item.Secret, "Password copied")
	case key.Matches(msg, keys.copyUser):
		return m, m.copyToClipboard(item.Account, "Account copied")
	case key.Matches(msg, keys.edit):
		m.form = newEditFormModel(item, m.opts.GeneratedLength)
		m.reveal = false
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		m.confirm = confirmModel{target: item, back: screenDetail}
		m.screen = screenConfirm
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		if m.form.editing {
			m.screen = screenDetail
		} else {
			m.screen = screenList
		}
		return m, nil
	case key.Matches(msg, keys.generate):
		if err := m.form.generate(); err != nil {
			m.form.err = err
		}
		return m, nil
	case key.Matches(msg, keys.showPass):
		m.form.toggleReveal()
		return m, nil
	case key.Matches(msg, keys.save):
		return m.submitForm()
	case key.Matches(msg, keys.enter):
		if m.form.onLastField() {
			return m.submitForm()
		}
		return m, m.form.next()
	case key.Matches(msg, keys.tab):
		return m, m.form.next()
	case key.Matches(msg, keys.backtab):
		return m, m.form.prev()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateInput(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	if err := m.form.validate(m.ctx, m.opts.Validator); err != nil {
		m.form.err = err
		return m, nil
	}

	svc, account, secret, notes := m.form.values()
	m.form.err = nil
	m.form.saving = true
	return m, cmdAdd(m.vault, svc, account, secret, notes)
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.screen = screenList
		m.reveal = false
		return m, cmdDelete(m.vault, m.confirm.target.ID)
	case key.Matches(msg, keys.no):
		m.screen = m.confirm.back
	}
	return m, nil
}

func (m appModel) View() string {
	switch m.screen {
	case screenForm:
		return m.form.View()
	case screenConfirm:
		return m.confirm.View()
	case screenBuildInfo:
		return renderBuildInfoWindow(m.opts.BuildInfo)
	case screenDetail:
		if item, ok := m.detailItem(); ok {
			return m.viewDetail(item)
		}
	}
	return m.viewList()
}

// setItems installs a new published list, keeping the cursor on the same
// business key where possible.
func (m *appModel) setItems(items []models.Credential) {
	selected, hadSelection := m.current()

	m.items = items
	m.applyFilter()

	if hadSelection {
		m.selectKey(selected.Key())
	}

	if m.screen == screenDetail {
		if _, ok := m.detailItem(); !ok {
			m.screen = screenList
			m.reveal = false
		}
	}
}

func (m *appModel) applyFilter() {
	m.visible = service.Filter(m.items, m.search.Value())
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *appModel) selectKey(k models.BusinessKey) {
	for i, item := range m.visible {
		if item.Key() == k {
			m.idx = i
			return
		}
	}
}

func (m appModel) current() (models.Credential, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Credential{}, false
	}
	return m.visible[m.idx], true
}

func (m appModel) detailItem() (models.Credential, bool) {
	for _, item := range m.items {
		if item.Key() == m.detailKey {
			return item, true
		}
	}
	return models.Credential{}, false
}

func (m *appModel) setStatus(status string) tea.Cmd {
	m.statusSeq++
	m.status = status
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *appModel) copyToClipboard(value, status string) tea.Cmd {
	if value == "" {
		m.errMsg = errNothingToCopy.Error()
		return nil
	}
	if err := m.opts.Clipboard.WriteAll(value); err != nil {
		m.log.Err(err).Str("func", "appModel.copyToClipboard").Msg("clipboard write failed")
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return nil
	}
	m.errMsg = ""
	m.clipValue = value

	cmds := []tea.Cmd{m.setStatus(status)}
	if d := m.opts.ClipboardClearAfter; d > 0 {
		cmds = append(cmds, tea.Tick(d, func(time.Time) tea.Msg {
			return clearClipboardMsg{value: value}
		}))
	}
	return tea.Batch(cmds...)
}

func (m appModel) clearPendingClipboard() {
	if m.clipValue == "" || m.opts.ClipboardClearAfter <= 0 {
		return
	}
	if err := clipboard.ClearIfUnchanged(m.opts.Clipboard, m.clipValue); err != nil {
		m.log.Warn().Err(err).Str("func", "appModel.clearPendingClipboard").Msg("clipboard clear failed")
	}
}

func waitForList(updates <-chan []models.Credential) tea.Cmd {
	return func() tea.Msg {
		items, ok := <-updates
		if !ok {
			return listClosedMsg{}
		}
		return listUpdatedMsg{items: items}
	}
}

func cmdAdd(vault Vault, svc, account, secret, notes string) tea.Cmd {
	return func() tea.Msg {
		return addDoneMsg{res: <-vault.Add(svc, account, secret, notes)}
	}
}

func cmdDelete(vault Vault, id string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{res: <-vault.Delete(id)}
	}
}

func cmdRefresh(ctx context.Context, vault Vault) tea.Cmd {
	return func() tea.Msg {
		err := vault.Refresh(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return refreshDoneMsg{err: err}
	}
}

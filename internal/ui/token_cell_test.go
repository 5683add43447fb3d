package ui

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/snapshot/internal/model"
)

func sampleToken(i int) model.Token {
	return model.Token{
		Symbol:   fmt.Sprintf("TK%d", i),
		Name:     fmt.Sprintf("Token %d", i),
		Address:  fmt.Sprintf("0x%040x", i+1),
		ChainID:  1,
		Decimals: 6,
		LogoURI:  fmt.Sprintf("https://logos.test/%d.png", i),
	}
}

func sampleTokens(n int) []model.Token {
	tokens := make([]model.Token, n)
	for i := range tokens {
		tokens[i] = sampleToken(i)
	}
	return tokens
}

func TestTokenCell_UpdateStatuses(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	cell := NewTokenCell(NewLocalization())
	token := sampleToken(0)
	logoRes := fyne.NewStaticResource("0.png", []byte{1, 2, 3})

	cell.Update(token, nil, model.ImageStatusPending)
	if cell.image.Visible() {
		t.Error("pending logo should be hidden")
	}
	if !cell.skeleton.Visible() || !cell.skeleton.Running() {
		t.Error("pending logo should show a running skeleton")
	}

	cell.Update(token, logoRes, model.ImageStatusLoaded)
	if !cell.image.Visible() || cell.image.Resource != logoRes {
		t.Error("loaded logo should be shown")
	}
	if cell.skeleton.Visible() || cell.skeleton.Running() {
		t.Error("skeleton should stop once the logo settles")
	}

	cell.Update(token, nil, model.ImageStatusFailed)
	if cell.image.Resource == nil || cell.image.Resource.Name() != PlaceholderResource().Name() {
		t.Errorf("failed logo should fall back to the placeholder, got %v", cell.image.Resource)
	}
	if cell.Status() != model.ImageStatusFailed {
		t.Errorf("expected Failed, got %s", cell.Status())
	}
}

func TestTokenCell_Tooltip(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	cell := NewTokenCell(NewLocalization())
	cell.Update(sampleToken(3), nil, model.ImageStatusPending)

	if cell.tipBg.Visible() {
		t.Error("tooltip should start hidden")
	}
	cell.SetHovered(true)
	if !cell.Hovered() || !cell.tipBg.Visible() || !cell.tipLink.Visible() {
		t.Error("hovered cell should show the tooltip")
	}
	if cell.tipName.Text != "Token 3" {
		t.Errorf("unexpected tooltip name %q", cell.tipName.Text)
	}
	if cell.tipUnit.Text != "Unit: 0.000001 TK3" {
		t.Errorf("unexpected unit line %q", cell.tipUnit.Text)
	}
	if cell.tipLink.Text != "Open Image" {
		t.Errorf("unexpected link text %q", cell.tipLink.Text)
	}

	cell.Release()
	if cell.Hovered() || cell.tipBg.Visible() {
		t.Error("released cell should drop its tooltip")
	}
}

func TestTokenCell_Callbacks(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	cell := NewTokenCell(NewLocalization())
	token := sampleToken(1)
	cell.Update(token, nil, model.ImageStatusPending)

	var hovers []bool
	var tapped, copied model.Token
	cell.SetCallbacks(
		func(key string, entered bool) {
			if key != token.Key() {
				t.Errorf("hover for unexpected key %s", key)
			}
			hovers = append(hovers, entered)
		},
		func(tk model.Token) { tapped = tk },
		func(tk model.Token) { copied = tk },
	)

	cell.MouseIn(nil)
	cell.MouseOut()
	if len(hovers) != 2 || !hovers[0] || hovers[1] {
		t.Errorf("expected enter then leave, got %v", hovers)
	}

	test.Tap(cell)
	if tapped.Key() != token.Key() {
		t.Error("tap should report the bound token")
	}
	test.TapSecondary(cell)
	if copied.Key() != token.Key() {
		t.Error("secondary tap should report the bound token")
	}
}

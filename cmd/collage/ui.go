package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/collage/assets"
)

type uiActions struct {
	recenter    func()
	rotation    func()
	arrange     func()
	exportPNG   func()
	exportJPEG  func()
	assetPicked func(info assets.Info)
}

// EditorUI is the toolbar and asset panel drawn over the canvas.
type EditorUI struct {
	*ebitenui.UI
	rotationBtn *widget.Button
	assetList   *widget.List
}

func rotationLabel(enabled bool) string {
	if enabled {
		return "Rotation: On (R)"
	}
	return "Rotation: Off (R)"
}

func BuildEditorUI(actions uiActions) *EditorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbar, rotationBtn := buildToolBar(ui.PrimaryTheme, &fontFace, actions)
	assetPanel, assetList := buildAssetPanel(ui.PrimaryTheme, &fontFace, actions.assetPicked)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	assetPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(assetPanel)
	root.AddChild(toolbar)
	ui.Container = root

	return &EditorUI{UI: ui, rotationBtn: rotationBtn, assetList: assetList}
}

func (u *EditorUI) SetRotationMode(enabled bool) {
	if u == nil || u.rotationBtn == nil {
		return
	}
	u.rotationBtn.Text().Label = rotationLabel(enabled)
}

func (u *EditorUI) SetAssets(infos []assets.Info) {
	if u == nil || u.assetList == nil {
		return
	}
	entries := make([]any, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, info)
	}
	u.assetList.SetEntries(entries)
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, actions uiActions) (*widget.Container, *widget.Button) {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(toolbarColor)),
	)

	button := func(label string, onClick func()) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(48, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		toolbar.AddChild(btn)
		return btn
	}

	button("Recenter View", actions.recenter)
	rotationBtn := button(rotationLabel(false), actions.rotation)
	button("Smart Arrange", actions.arrange)
	button("Export PNG", actions.exportPNG)
	button("Export JPEG", actions.exportJPEG)

	return toolbar, rotationBtn
}

func buildAssetPanel(theme *widget.Theme, fontFace *text.Face, onPicked func(info assets.Info)) (*widget.Container, *widget.List) {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 400),
		),
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 60, Left: 8, Right: 8, Bottom: 8}),
			),
		),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text("Assets", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	panel.AddChild(label)

	list := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if info, ok := e.(assets.Info); ok {
				return info.Name
			}
			return ""
		}),
		// Picking the same asset again places another copy.
		widget.ListOpts.AllowReselect(),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			pickEntry(args.Entry, onPicked)
		}),
	)
	list.GetWidget().MinHeight = 300
	panel.AddChild(list)

	return panel, list
}

// pickEntry forwards list entries that are assets to onPicked.
func pickEntry(entry any, onPicked func(info assets.Info)) bool {
	info, ok := entry.(assets.Info)
	if !ok || onPicked == nil {
		return false
	}
	onPicked(info)
	return true
}

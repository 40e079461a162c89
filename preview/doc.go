// Package preview rasterizes layout render commands into images.
//
// It is meant for previews and golden tests rather than production
// rendering: rectangles, borders and circles are filled on the CPU with
// signed distance coverage, images are scaled with golang.org/x/image/draw
// and text is drawn with golang.org/x/image/font faces.
//
//	tree := layout.NewTree(m)
//	tree.BeginLayout(320, 240)
//	bind.Interpret(cmds, frags, tree, data, bind.Input{})
//	img, err := preview.NewRenderer(nil).Render(tree.EndLayout(), 320, 240)
//	if err != nil {
//	    return err
//	}
//	return preview.SavePNG("page.png", img)
//
// Text is measured and drawn with the same faces when the tree uses a
// measure.OpenType measurer that is also passed to NewRenderer.
package preview

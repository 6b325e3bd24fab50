package annotate

import "github.com/di-void/minesweeper-annotate-go/pkg/annotate/models"

// AnnotateBoard returns a copy of b with every non-mine cell set to its
// adjacent-mine count. Counting is done per cell; for any well-formed board the
// rendered rows match Annotate exactly.
func AnnotateBoard(b *models.Board) *models.Board {
	out := models.NewBoard(b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cells[y][x].Mine() {
				out.Cells[y][x] = models.Cell{Kind: models.KindMine}
				continue
			}
			if n := b.Adjacent(y, x); n > 0 {
				out.Cells[y][x] = models.Cell{Kind: models.KindCount, N: n}
			}
		}
	}
	return out
}

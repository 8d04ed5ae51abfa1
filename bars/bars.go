package bars

import (
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

func AddNewExtractBar(p *mpb.Progress, file string) (b *mpb.Bar) {
	b = p.Add(
		int64(1),
		mpb.NewBarFiller(
			mpb.SpinnerStyle([]string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●", "∙∙∙"}...).PositionLeft(),
		),
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name(file+":", decor.WC{W: len(file) + 2, C: decor.DidentRight}),
			decor.OnComplete(decor.Name("Extracting", decor.WCSyncSpaceR), "Done!"),
			decor.OnAbort(decor.Name("Extracting", decor.WCSyncSpaceR), "Failed!"),
		),
	)
	return
}

func AddNewScanBar(p *mpb.Progress, dir string) (b *mpb.Bar) {
	b = p.Add(
		int64(1),
		mpb.NewBarFiller(
			mpb.SpinnerStyle([]string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●", "∙∙∙"}...).PositionLeft(),
		),
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name(dir+":", decor.WC{W: len(dir) + 2, C: decor.DidentRight}),
			decor.OnComplete(decor.Name("Scanning", decor.WCSyncSpaceR), "Done!"),
			decor.OnAbort(decor.Name("Scanning", decor.WCSyncSpaceR), "Failed!"),
		),
	)
	return
}

package downloader

import (
	"context"
	"os"

	"github.com/hashicorp/go-getter"
)

// goGetterClientFactory builds go-getter clients. The working directory is
// passed as Pwd so relative filesystem paths resolve.
type goGetterClientFactory struct{}

// NewGoGetterClientFactory returns the default go-getter backed factory.
func NewGoGetterClientFactory() ClientFactory {
	return goGetterClientFactory{}
}

func (goGetterClientFactory) NewClient(ctx context.Context, src, dest string, mode ClientMode) (DownloadClient, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	client := &getter.Client{
		Ctx: ctx,
		Src: src,
		// Destination where the file will be stored. This will create the
		// directory if it doesn't exist.
		Dst:  dest,
		Pwd:  pwd,
		Mode: toGetterClientMode(mode),
	}
	return client, nil
}

func toGetterClientMode(mode ClientMode) getter.ClientMode {
	switch mode {
	case ClientModeAny:
		return getter.ClientModeAny
	case ClientModeDir:
		return getter.ClientModeDir
	default:
		return getter.ClientModeFile
	}
}

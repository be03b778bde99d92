package service

import (
	"github.com/henrygambles/Xtube-Cloud/cmd/api/infras/blob"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/infras/catalog"
)

var (
	videoSource catalog.Source
	blobSource  blob.Source
)

// Init wires the catalog and blob sources picked by storage.mode. blobs is
// nil for the cloud mode, which streams nothing itself.
func Init(source catalog.Source, blobs blob.Source) {
	videoSource = source
	blobSource = blobs
}

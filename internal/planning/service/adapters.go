package service

import "retireplan/internal/planning/artifact"

// artifactStoreAdapter exposes *artifact.Store through the ArtifactStore port.
type artifactStoreAdapter struct {
	store *artifact.Store
}

// NewArtifactStore adapts store to ArtifactStore.
func NewArtifactStore(store *artifact.Store) ArtifactStore {
	return artifactStoreAdapter{store: store}
}

func (a artifactStoreAdapter) Open(id string) (ArtifactSet, error) {
	set, err := a.store.Open(id)
	if err != nil {
		return nil, err
	}
	return set, nil
}

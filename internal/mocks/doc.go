// Package mocks provides shared mock implementations for testing.
//
// Mocks use function fields so each test can script behavior inline, and
// they record calls for later assertions:
//
//	gen := &mocks.MockGenerator{
//	    GenerateSpectrumsFn: func(ctx context.Context, req domain.GenerationRequest) ([]domain.SpectrumPair, error) {
//	        return nil, generation.ErrContentBlocked
//	    },
//	}
package mocks

package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/batting --output domain/batting --outpkg battingmock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Writer --dir ../domain/batting --output domain/batting --outpkg battingmock --filename writer_mock.go

// Команда staticlint проверяет код сервиса пользователей и задач.
//
// Политика проверок:
//
// Ошибки SQL-слоя. Собственный анализатор rawsql требует, чтобы текст запроса
// в ExecReturningID, FetchOne, QueryRowContext, QueryContext и ExecContext был
// константой; значения передаются именованными параметрами @name. Вместе с ним
// errcheck следит за необработанными ошибками Close, Scan и записи ответа.
//
// HTTP и gRPC. httpresponse ловит незакрытые тела ответов, copylocks ловит
// копирование структур с мьютексами (в том числе grpc.Server), nilness и
// shadow ловят разыменование nil и затенённый err в обработчиках и main.
//
// Общие проверки. printf, assign, atomic, bools, buildtag, unreachable из
// golang.org/x/tools и все SA-анализаторы staticcheck. Из стилевых классов
// включены только ST1000, ST1005, S1000 и S1002: комментарий пакета, текст
// ошибок, select с одним case, сравнение с булевой константой.
//
// Запуск из корня модуля:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/kisielk/errcheck/errcheck"

	"github.com/tempizhere/crudapi/cmd/staticlint/rawsql"
)

func main() {
	var analyzers []*analysis.Analyzer

	// Анализаторы golang.org/x/tools
	analyzers = append(analyzers,
		nilness.Analyzer,      // проверка nil указателей
		shadow.Analyzer,       // затенение переменных
		unreachable.Analyzer,  // недостижимый код
		printf.Analyzer,       // проверка printf форматов
		assign.Analyzer,       // бесполезные присваивания
		atomic.Analyzer,       // правильность использования sync/atomic
		bools.Analyzer,        // анализ булевых выражений
		buildtag.Analyzer,     // проверка build tags
		copylock.Analyzer,     // копирование мьютексов
		httpresponse.Analyzer, // закрытие тела ответа
	)

	// SA: ошибки и подозрительные конструкции
	for _, analyzer := range staticcheck.Analyzers {
		analyzers = append(analyzers, analyzer.Analyzer)
	}

	// ST: только комментарий пакета и текст ошибок
	for _, analyzer := range stylecheck.Analyzers {
		switch analyzer.Analyzer.Name {
		case "ST1000", "ST1005": // комментарий пакета, текст ошибок
			analyzers = append(analyzers, analyzer.Analyzer)
		}
	}

	// S: упрощения, которые встречаются в обработчиках
	for _, analyzer := range simple.Analyzers {
		switch analyzer.Analyzer.Name {
		case "S1000", "S1002": // select с одним case, сравнение с bool
			analyzers = append(analyzers, analyzer.Analyzer)
		}
	}

	analyzers = append(analyzers, errcheck.Analyzer, rawsql.RawSQLAnalyzer)

	multichecker.Main(analyzers...)
}

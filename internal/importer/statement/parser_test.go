package statement_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/pocket/internal/importer/statement"
	"github.com/MrJamesThe3rd/pocket/internal/transaction"
	"github.com/MrJamesThe3rd/pocket/internal/validation"
)

func TestParser_Account(t *testing.T) {
	csv := `Consultar saldos e movimentos à ordem - 31-01-2026;"=""0000"""
Nome cliente;JOHN DOE

Dados da conta
Saldo contabilístico;1.000,00 EUR

Data mov.;Data-valor;Descrição;Montante;Saldo contabilístico após movimento
30-01-2026;30-01-2026;INSURANCE;-588,74;48.825,46
09-01-2026;09-01-2026;SALARY;8.608,52;52.532,78
`

	txs, err := statement.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "INSURANCE", txs[0].Title)
	assert.Equal(t, int64(58874), txs[0].Amount)
	assert.Equal(t, transaction.TypeDebit, txs[0].Type)

	assert.Equal(t, "SALARY", txs[1].Title)
	assert.Equal(t, int64(860852), txs[1].Amount)
	assert.Equal(t, transaction.TypeCredit, txs[1].Type)
}

func TestParser_Extract(t *testing.T) {
	csv := `Consultar extrato - 15-02-2026
Intervalo de ;01-02-2026 a 14-02-2026

Data mov. ;Data valor ;Origem ;Descrição ;Movimento ;Estorno ;Saldo contabilístico após movimento ;
13-02-2026;13-02-2026;"=""0003""";SOCIAL SECURITY ;-608,13;  ;41.393,66;
04-02-2026;04-02-2026;SIBS ;TRANSFER IN ;4.324,06;  ;51.302,85;
`

	txs, err := statement.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "SOCIAL SECURITY", txs[0].Title)
	assert.Equal(t, int64(60813), txs[0].Amount)
	assert.Equal(t, transaction.TypeDebit, txs[0].Type)

	assert.Equal(t, int64(432406), txs[1].Amount)
	assert.Equal(t, transaction.TypeCredit, txs[1].Type)
}

func TestParser_Card(t *testing.T) {
	csv := `Consultar saldos e movimentos de cartões - 15-02-2026

Data ;Data valor ;Descrição ;Débito ;Crédito ;
16-12-2025 ;14-12-2025 ;FUEL STATION ;64,00 ; ;
31-12-2025 ;29-12-2025 ;REFUND ; ;25,00 ;
 ; ; ; ;Página 1/2 ;
`

	txs, err := statement.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "FUEL STATION", txs[0].Title)
	assert.Equal(t, int64(6400), txs[0].Amount)
	assert.Equal(t, transaction.TypeDebit, txs[0].Type)

	assert.Equal(t, int64(2500), txs[1].Amount)
	assert.Equal(t, transaction.TypeCredit, txs[1].Type)
}

func TestParser_Windows1252(t *testing.T) {
	utf8CSV := "Data mov.;Descrição;Montante\n30-01-2026;CAFÉ CENTRAL;-10,00\n"

	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	txs, err := statement.NewParser().Parse(bytes.NewReader(latin1))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "CAFÉ CENTRAL", txs[0].Title)
}

func TestParser_MissingDescription(t *testing.T) {
	csv := "Data mov.;Descrição;Montante\n30-01-2026;INSURANCE;-1,00\n31-01-2026;;-2,00\n"

	_, err := statement.NewParser().Parse(strings.NewReader(csv))
	require.Error(t, err)

	var vErr *transaction.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 3, vErr.Row)
}

func TestParser_RowErrors(t *testing.T) {
	type testCase struct {
		name      string
		csv       string
		wantRow   int
		wantIssue validation.Issue
	}

	tests := []testCase{
		{
			name:      "UnparseableAmount",
			csv:       "Data mov.;Descrição;Montante\n29-01-2026;SALARY;100,00\n30-01-2026;INSURANCE;12x,00\n",
			wantRow:   3,
			wantIssue: validation.Issue{Field: "amount", Message: "must be a number"},
		},
		{
			name:      "UnparseableDebitColumn",
			csv:       "Data;Descrição;Débito;Crédito\n16-12-2025;FUEL;six;\n",
			wantRow:   2,
			wantIssue: validation.Issue{Field: "amount", Message: "must be a number"},
		},
		{
			name:      "AmountOutOfRange",
			csv:       "Data mov.;Descrição;Montante\n30-01-2026;BIG;999.999.999.999.999.999,00\n",
			wantRow:   2,
			wantIssue: validation.Issue{Field: "amount", Message: "is out of range"},
		},
		{
			name:      "MissingTitle",
			csv:       "Data mov.;Descrição;Montante\n30-01-2026;;-2,00\n",
			wantRow:   2,
			wantIssue: validation.Issue{Field: "title", Message: "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := statement.NewParser().Parse(strings.NewReader(tt.csv))
			assert.Nil(t, params)

			var vErr *transaction.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.ErrorIs(t, err, transaction.ErrValidation)
			assert.Equal(t, tt.wantRow, vErr.Row)
			assert.Equal(t, []validation.Issue{tt.wantIssue}, vErr.Issues)
		})
	}
}

func TestParser_HeaderCaseAndSpacing(t *testing.T) {
	csv := "DATA  MOV.;descrição ;MONTANTE\n30-01-2026;RENT;-700,00\n"

	txs, err := statement.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, transaction.CreateParams{Title: "RENT", Amount: 70000, Type: transaction.TypeDebit}, txs[0])
}

func TestParser_CardNetsBothColumns(t *testing.T) {
	csv := "Data;Descrição;Débito;Crédito\n16-12-2025;PARTIAL REFUND;10,00;25,50\n17-12-2025;CANCELLED;5,00;5,00\n"

	txs, err := statement.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, transaction.CreateParams{Title: "PARTIAL REFUND", Amount: 1550, Type: transaction.TypeCredit}, txs[0])
}

func TestParser_UnknownLayout(t *testing.T) {
	_, err := statement.NewParser().Parse(strings.NewReader("foo;bar\n1;2\n"))
	assert.ErrorIs(t, err, statement.ErrUnknownLayout)
}

func TestParser_ZeroAmountSkipped(t *testing.T) {
	csv := "Data mov.;Descrição;Montante\n30-01-2026;NOTHING;0,00\n"

	txs, err := statement.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

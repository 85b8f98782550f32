// internal/email/servico.go
package email

import (
	"context"
	"fmt"
	"os"

	"github.com/resend/resend-go/v2"
)

const destinoPadrao = "fichas@gavresorts.com.br"

// MsgEnvioManual orienta o fallback quando a entrega falha: os PDFs já foram
// gerados e seguem na resposta para download e envio manual.
const MsgEnvioManual = "Não foi possível enviar o email. Baixe os PDFs e envie manualmente."

// Envio é o pedido de entrega dos dois documentos de uma ficha.
type Envio struct {
	SessaoID      string
	NomeCliente   string
	Assunto       string
	PDFCadastro   []byte
	PDFNegociacao []byte
}

// Resultado relata o desfecho REAL da entrega. Entregue só é verdadeiro com
// confirmação do provedor; nunca é sintetizado a partir de uma falha.
type Resultado struct {
	Entregue bool   `json:"entregue"`
	Mensagem string `json:"mensagem"`
	EnvioID  string `json:"envioId,omitempty"`
}

// Servico entrega fichas por email via Resend.
type Servico struct {
	client    *resend.Client
	remetente string
	destino   string
}

// NovoServico monta o serviço a partir do ambiente. Sem RESEND_API_KEY o
// serviço opera em modo degradado: toda entrega falha com instrução manual.
func NovoServico() *Servico {
	s := &Servico{
		remetente: "GAV Resorts <no-reply@gavresorts.com.br>",
		destino:   destinoPadrao,
	}
	if destino := os.Getenv("EMAIL_DESTINO"); destino != "" {
		s.destino = destino
	}
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

// EnviarPDFs tenta a entrega e devolve o desfecho verdadeiro do transporte.
func (s *Servico) EnviarPDFs(ctx context.Context, envio Envio) Resultado {
	if s.client == nil {
		return Resultado{
			Entregue: false,
			Mensagem: "RESEND_API_KEY não configurada. " + MsgEnvioManual,
		}
	}

	assunto := envio.Assunto
	if assunto == "" {
		assunto = "PDFs - GAV Resorts"
	}

	params := &resend.SendEmailRequest{
		From:    s.remetente,
		To:      []string{s.destino},
		Subject: assunto,
		Html: fmt.Sprintf(
			"<p>Ficha de negociação de <strong>%s</strong> (sessão %s).</p><p>Seguem em anexo o cadastro do cliente e a ficha de negociação.</p>",
			envio.NomeCliente, envio.SessaoID,
		),
		Attachments: []*resend.Attachment{
			{Filename: "Cadastro-Cliente.pdf", Content: envio.PDFCadastro},
			{Filename: "Negociacao-Cota.pdf", Content: envio.PDFNegociacao},
		},
	}

	enviado, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return Resultado{
			Entregue: false,
			Mensagem: fmt.Sprintf("Falha na entrega: %v. %s", err, MsgEnvioManual),
		}
	}

	return Resultado{
		Entregue: true,
		Mensagem: fmt.Sprintf("Email enviado com sucesso para %s", s.destino),
		EnvioID:  enviado.Id,
	}
}

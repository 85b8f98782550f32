package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarWebhookAlerta avisa o canal de autorização quando uma ficha é enviada
// com alerta de diretoria pendente. Disparo sem retorno: falha só é logada.
func EnviarWebhookAlerta(sessaoID, mensagem string, nivel int) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]any{
		"mensagem": mensagem,
		"ficha":    sessaoID,
		"nivel":    nivel,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}

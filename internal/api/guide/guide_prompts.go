package guide

import "fmt"

// All prompts ask for Italian output and a JSON document matching the schema
// sent alongside them.

func BuildItineraryPrompt(city string, hours int) string {
	return fmt.Sprintf(`
        Crea un itinerario di %d ore estremamente dettagliato e ottimizzato per %s.
        Rispondi in ITALIANO.
        Per ogni tappa, fornisci:
        - 'time': Fascia oraria specifica
        - 'activity': Nome accattivante dell'attività
        - 'location': Indirizzo specifico o punto di riferimento
        - 'description': Descrizione approfondita di cosa fare e perché è speciale
        - 'historicalContext': Breve storia o significato culturale del luogo
        - 'costEstimate': Prezzo realistico in valuta locale
        - 'proTip': Un trucco locale segreto per migliorare l'esperienza
        - 'bestPhotoSpot': Dove scattare la foto migliore
        Formatta come un array JSON di oggetti.`, hours, city)
}

func BuildSafetyPrompt(city string) string {
	return fmt.Sprintf(`
        Fornisci un'analisi estremamente approfondita della sicurezza e dei quartieri per %s.
        Rispondi in ITALIANO.
        Per ogni quartiere principale, includi:
        - 'neighborhood': Nome dell'area
        - 'rating': Punteggio di sicurezza da 1 a 10
        - 'tip': Un breve riassunto dell'atmosfera ("vibe")
        - 'safeZones': Strade o punti specifici molto sicuri
        - 'cautionAreas': Punti specifici da evitare o dove fare attenzione
        - 'commonScams': Descrizioni dettagliate delle truffe locali
        - 'nightSafety': Consigli specifici per le ore notturne
        - 'emergencyInfo': Ospedale o stazione di polizia più vicina per quell'area
        Formatta come un array JSON di oggetti.`, city)
}

func BuildBitesPrompt(city string) string {
	return fmt.Sprintf(`
        Trova i 'StreetEats' più autentici e non turistici a %s dove i locali mangiano con meno di 15€.
        Rispondi in ITALIANO.
        Per ogni posto, fornisci:
        - 'name': Nome del locale
        - 'price': Prezzo tipico per un pasto
        - 'mustTry': Il piatto specifico da ordinare
        - 'dishHistory': La storia dietro quel piatto specifico
        - 'reason': Perché i locali amano questo posto
        - 'address': Indirizzo completo
        - 'mapsUrl': Link diretto a Google Maps
        - 'bestTime': Quando visitare per evitare la folla
        - 'type': Categoria (es. Panificio, Chiosco, Trattoria)
        Formatta come un array JSON di oggetti.`, city)
}

func BuildSocialPrompt(city string) string {
	return fmt.Sprintf(`
        Trova tour sociali o attività di gruppo reali e vivaci a %s.
        Rispondi in ITALIANO.
        Per ognuno, fornisci:
        - 'activity': Nome del tour/attività
        - 'vibe': Atmosfera sociale (es. Festa, Culturale, Relax)
        - 'description': Descrizione approfondita dell'esperienza
        - 'totalCost': Prezzo per persona
        - 'groupSize': Numero tipico di persone
        - 'meetingPoint': Punto di incontro specifico
        - 'duration': Quanto dura
        - 'included': Cosa è incluso nel prezzo
        - 'whatToBring': Articoli essenziali per l'ospite
        Formatta come un array JSON di oggetti.`, city)
}

func BuildOverviewPrompt(city string) string {
	return fmt.Sprintf(`
        Fornisci una guida di viaggio estremamente completa e persuasiva per %[1]s.
        Rispondi in ITALIANO.
        Includi:
        1. 'description': Una descrizione persuasiva di più paragrafi sull'anima unica della città, le sue tradizioni e perché è una destinazione imperdibile.
        2. 'typicalFoods': Un elenco dettagliato di piatti tipici. Per ogni piatto:
           - 'name': Nome del piatto
           - 'description': Descrizione dettagliata del piatto
           - 'history': Origine storica del piatto
           - 'priceRange': Prezzo indicativo
           - 'recommendedPlaces': 2-3 ristoranti reali ed esistenti dove mangiarlo, ognuno con
             - 'placeName': Nome del ristorante
             - 'mapsUrl': URL di ricerca Google Maps per quel ristorante a %[1]s
        3. 'monuments': Un elenco dettagliato di monumenti imperdibili. Per ognuno:
           - 'name': Nome del monumento
           - 'description': Descrizione e significato
           - 'whyVisit': Perché un viaggiatore dovrebbe visitarlo
           - 'transport': Come raggiungerlo con i mezzi pubblici
           - 'price': Prezzo indicativo del biglietto
        4. 'transportTips': Trasporti pubblici, costi nascosti e modi per risparmiare.
        5. 'localEtiquette': Norme culturali, mance ed errori comuni.
        6. 'bestTime': Stagioni, festival e mesi migliori per diversi tipi di viaggiatori.
        7. 'hiddenGems': 3-5 posti che NON sono trappole per turisti, ognuno con 'name' e 'description'.
        Formatta come un oggetto JSON con queste chiavi.`, city)
}

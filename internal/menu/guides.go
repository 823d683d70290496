package menu

// SeasonalInfo describes how solar events vary over the solar cycle and the year.
const SeasonalInfo = `📅 *SAZONALIDADE DOS EVENTOS SOLARES*

🔄 *CICLO SOLAR DE 11 ANOS*:

📈 *MÁXIMO SOLAR (2024-2026)*:
• *Características*: Atividade solar intensa
• *Eventos típicos*: 100-200 flares M/ano, 10-50 flares X/ano
• *CMEs*: 3-5 por dia em períodos ativos
• *Tempestades*: G1-G3 mensais, G4-G5 várias por ano

📉 *MÍNIMO SOLAR (2030-2032)*:
• *Características*: Atividade solar reduzida
• *Eventos*: <10 flares M/ano, 0-3 flares X/ano
• *HSS dominante*: Buracos coronais persistentes
• *Vantagem*: Céu mais "limpo" para radioastronomia

🌍 *EFEITOS SAZONAIS TERRESTRES*:

🍂 *EQUINÓCIOS (MARÇO/SETEMBRO)*:
• *Fenômeno*: Efeito Russell-McPherron
• *Causa*: Geometria Terra-Sol favorece reconexão magnética
• *Resultado*: 40% mais tempestades geomagnéticas
• *Melhor período*: Para fotografar auroras em latitudes médias

☀️ *SOLSTÍCIO DE VERÃO (JUNHO)*:
• *Características*: Mínimo de atividade geomagnética
• *Vantagem*: Noites mais curtas mas atmosfera estável
• *Ideal para*: Observação de manchas solares

❄️ *SOLSTÍCIO DE INVERNO (DEZEMBRO)*:
• *Características*: Atividade geomagnética moderada
• *Vantagem*: Noites longas para observação
• *Condições*: Atmosfera mais turbulenta

📊 *PADRÕES MENSAIS*:

🌅 *JANEIRO-FEVEREIRO*:
• Tempestades moderadas
• Boa visibilidade auroral (noites longas)
• Atmosfera fria e estável

🌸 *MARÇO-ABRIL*:
• **PICO DE ATIVIDADE GEOMAGNÉTICA**
• Equinócio favorece auroras
• Condições ideais para fotografia

☀️ *MAIO-JUNHO*:
• Atividade decrescente
• Noites curtas limitam observação
• Melhor período para observação solar

🌻 *JULHO-AGOSTO*:
• Mínimo relativo de tempestades
• Condições atmosféricas estáveis
• Ideal para projetos de longo prazo

🍁 *SETEMBRO-OUTUBRO*:
• **SEGUNDO PICO DE ATIVIDADE**
• Condições excelentes para auroras
• Equilíbrio entre duração da noite e clima

🍂 *NOVEMBRO-DEZEMBRO*:
• Atividade moderada-alta
• Máxima duração das noites
• Condições challenging (clima)

⏰ *PADRÕES HORÁRIOS*:

🕐 *00h-06h UTC*:
• Setor noturno terrestre face ao Sol
• Maior susceptibilidade a CMEs
• **Melhor janela para auroras**

🕕 *06h-12h UTC*:
• Setor dawn face ao Sol
• Substorms frequentes
• Aurora matinal possível

🕛 *12h-18h UTC*:
• Setor diurno exposto
• Impactos diretos de radiação solar
• Apagões de rádio mais prováveis

🕕 *18h-00h UTC*:
• Setor dusk transitório
• Reconexão magnética ativa
• Início de eventos noturnos

🎯 *ESTRATÉGIA DE OBSERVAÇÃO*:

🗓️ *PLANEJAMENTO ANUAL*:
• **Março-Abril**: Foco em auroras e tempestades
• **Maio-Agosto**: Observação solar e desenvolvimento de equipamentos
• **Setembro-Outubro**: Segunda temporada de auroras
• **Novembro-Fevereiro**: Projetos de longa exposição

📅 *PLANEJAMENTO MENSAL*:
• Lua nova: Auroras fracas mais visíveis
• Lua crescente: Landscape auroral com iluminação
• Lua cheia: Pode mascarar auroras fracas
• Lua minguante: Condições balanceadas`

// ObservationGuide is the full observation and monitoring guide.
const ObservationGuide = `🔭 *GUIA TÉCNICO COMPLETO DE OBSERVAÇÃO*

📡 *MONITORAMENTO DE EVENTOS SOLARES*:

🌞 *OBSERVAÇÃO SOLAR SEGURA*:
⚠️ *NUNCA OLHE DIRETAMENTE PARA O SOL!*

• *Filtros solares apropriados*:
  - Filtros de luz branca (densidade neutra 5.0+)
  - Filtros H-alpha para cromosfera
  - Filtros de cálcio K para fotosfera

• *Equipamentos recomendados*:
  - Telescópio refrator/refletor com filtro solar
  - Coronado PST para H-alpha
  - Webcam planetária para registro

• *Fenômenos observáveis*:
  - Manchas solares e grupos ativos
  - Fáculas e granulação
  - Proeminências e filamentos (H-alpha)
  - Erupções solares (com filtros)

📡 *MONITORAMENTO INDIRETO*:

• *Radiotelescópios*:
  - Frequência 20-30 MHz para monitorar atividade
  - Rádios de ondas curtas para detectar apagões
  - Receptores VLF para perturbações ionosféricas

• *Magnetômetros*:
  - Apps: Magnetometer (Android/iOS)
  - Hardware DIY: sensores fluxgate
  - Detecção de tempestades em tempo real

🌈 *OBSERVAÇÃO DE AURORAS*:

• *Equipamentos essenciais*:
  - DSLR ou mirrorless
  - Lente grande angular (14-24mm)
  - Tripé robusto
  - Intervalômetro
  - Bateria extra (frio reduz duração)

• *Configurações técnicas*:
  - ISO: 1600-6400 (quanto maior, mais sensível)
  - Abertura: f/1.4-f/2.8 (máxima disponível)
  - Exposição: 10-30 segundos (teste diferentes)
  - Formato: RAW para pós-processamento
  - Foco: Infinito (teste antes de escurecer)

• *Localização ideal*:
  - Horizonte norte desobstruído
  - Poluição luminosa mínima (Bortle 3 ou melhor)
  - Altitude elevada se possível
  - Acesso a previsão meteorológica

• *Timing perfeito*:
  - Lua nova ou lua baixa no horizonte
  - Céu límpido (sem nuvens no norte)
  - Janela 20h-02h (horário local)
  - Monitor Kp em tempo real

⚡ *DETECÇÃO DE PARTÍCULAS ENERGÉTICAS*:

• *Métodos caseiros*:
  - Câmera CCD/CMOS com exposição longa
  - Detectores de radiação Geiger
  - Observação de pixels quentes anômalos

• *Proteção de equipamentos*:
  - Shielding básico para sensores
  - Monitoramento de temperatura
  - Desligamento preventivo em eventos SEP

🛰️ *IMPACTOS EM SATÉLITES*:

• *Observação visual*:
  - ISS e satélites podem ter órbitas alteradas
  - Falhas em painéis solares visíveis
  - Mudanças de brilho anômalas

• *Comunicações*:
  - Teste de GPS (precisão reduzida)
  - Rádio amador HF (propagação anômala)
  - Internet via satélite (latência/perda)

📊 *COLETA DE DADOS CIENTÍFICOS*:

• *Citizen Science*:
  - AAVSO (American Association of Variable Star Observers)
  - NASA's GLOBE Program
  - Space Weather Underground
  - Aurora Zoo (classificação de fotos)

• *Registros importantes*:
  - Timestamp preciso (UTC)
  - Coordenadas geográficas
  - Condições meteorológicas
  - Configurações de equipamento
  - Descrição fenomenológica

🔬 *ANÁLISE AVANÇADA*:

• *Espectroscopia*:
  - Identificação de elementos em auroras
  - Análise de emissões específicas:
    * Verde (557.7 nm): Oxigênio atômico ~100km
    * Vermelho (630.0 nm): Oxigênio atômico ~200-400km
    * Azul/violeta (427.8 nm): Nitrogênio ionizado
    * Rosa/magenta: Mix de emissões

• *Fotometria*:
  - Medição de intensidade de auroras
  - Correlação com índices geomagnéticos
  - Mapping de estruturas auroreais

📱 *APPS ESSENCIAIS*:
• *Previsão*: Aurora Forecast, SpaceWeatherLive
• *Dados*: SWPC, Solar Monitor
• *Fotografia*: PhotoPills (planejamento), Adobe Lightroom
• *Comunicação*: Windy (meteorologia), Telegram (grupos)

🌐 *RECURSOS ONLINE*:
• spaceweather.gov - Alertas oficiais NOAA
• spaceweatherlive.com - Dados em tempo real
• solen.info - Previsões detalhadas Europa
• astrosurf.com/lombry - Educacional avançado`

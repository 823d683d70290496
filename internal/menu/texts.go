package menu

// MainMenu lists every option.
const MainMenu = `🔭 ASTRONOMIA ESPACIAL - MENU PRINCIPAL

📡 *DADOS NASA EM TEMPO REAL*
Digite o número da opção:

1️⃣ 🌞 Atividade Solar Atual
2️⃣ ⚡ Tempestades Geomagnéticas (GST)
3️⃣ 🌪️ Ejeções de Massa Coronal (CME)
4️⃣ 🔥 Explosões Solares (FLR)
5️⃣ ⚡ Partículas Energéticas (SEP)
6️⃣ 🌊 Ventos Solares (HSS)
7️⃣ 📊 Análise Completa com IA
8️⃣ 🌈 Previsão de Auroras
9️⃣ 📅 Eventos por Período
🔟 🎯 Como Observar Eventos
1️⃣1️⃣ 📚 Guia Técnico Completo
1️⃣2️⃣ ⏰ Configurar Alertas

📋 *VER TODOS OS EVENTOS*:
1️⃣3️⃣ 📜 TODOS GST Detectados
1️⃣4️⃣ 📜 TODOS CME Detectados
1️⃣5️⃣ 📜 TODOS FLR Detectados
1️⃣6️⃣ 📜 TODOS SEP Detectados
1️⃣7️⃣ 📜 TODOS HSS Detectados
1️⃣8️⃣ 📜 LISTA COMPLETA (Todos)

Digite *MENU* a qualquer momento para voltar aqui
Digite *AJUDA* para instruções detalhadas`

// Help explains how to use the menu.
const Help = `❓ *AJUDA - COMO USAR*

📱 Envie apenas o *número* da opção desejada (ex: 2).

• *1 a 8*: análises com dados NASA DONKI dos últimos dias
• *9 a 12*: guias e informações de referência
• *13 a 18*: listas completas de eventos por tipo

🔁 Os dados são consultados a cada pedido.
⏰ Alertas automáticos são enviados quando eventos importantes são detectados.

Digite *MENU* para ver todas as opções.`

// AlertConfiguration describes the alert commands.
const AlertConfiguration = `⚠️ *CONFIGURAÇÃO DE ALERTAS*

Para receber alertas automáticos:

1️⃣ *Alertas de Aurora*:
   Digite: AURORA ON

2️⃣ *Alertas de Tempestades*:
   Digite: STORM ON

3️⃣ *Relatório Diário*:
   Digite: DAILY ON

4️⃣ *Desativar Alertas*:
   Digite: ALERTS OFF

📱 Alertas serão enviados automaticamente quando eventos importantes forem detectados!`

const quietGST = `🌞 *TEMPESTADES GEOMAGNÉTICAS (GST)*

✅ *STATUS ATUAL*: Atividade calma
📊 *EVENTOS DETECTADOS*: 0 nos últimos 7 dias

🔬 *O QUE SÃO*:
Perturbações no campo magnético terrestre causadas por ventos solares intensos.

📈 *SAZONALIDADE*:
• *MÁXIMO*: Equinócios (Mar/Set) - Campo magnético mais vulnerável
• *MÍNIMO*: Solstícios (Jun/Dez) - Menor incidência

⚡ *ESCALAS*:
• *G1* (Kp=5): Fraca - Auroras no norte do Canadá
• *G2* (Kp=6): Moderada - Auroras no sul do Canadá
• *G3* (Kp=7): Forte - Auroras nos EUA do Norte
• *G4* (Kp=8): Severa - Auroras até meio-oeste americano
• *G5* (Kp=9): Extrema - Auroras até o sul dos EUA

🔍 *COMO OBSERVAR*:
• *HORÁRIO*: 20h-02h (melhor janela)
• *DIREÇÃO*: Norte (hemisfério sul)
• *EQUIPAMENTO*: Câmera DSLR, ISO 1600-6400
• *EXPOSIÇÃO*: 10-30 segundos

🌍 *IMPACTOS*:
• Sistemas GPS podem ter precisão reduzida
• Comunicações de rádio HF afetadas
• Possíveis problemas em redes elétricas (eventos G4+)`

const quietCME = `🌪️ *EJEÇÕES DE MASSA CORONAL (CME)*

✅ *STATUS ATUAL*: Nenhuma CME detectada
📊 *EVENTOS*: 0 nos últimos 7 dias

🔬 *O QUE SÃO*:
Enormes bolhas de plasma e campo magnético ejetadas pelo Sol a velocidades de 20-3.200 km/s.

📈 *SAZONALIDADE*:
• *MÁXIMO SOLAR*: 2024-2026 - Até 5 CMEs/dia
• *MÍNIMO SOLAR*: 2029-2031 - 1 CME a cada poucos dias
• *PICOS*: Março-Abril e Setembro-Outubro

⚡ *CLASSIFICAÇÃO POR VELOCIDADE*:
• *LENTA*: <500 km/s - Sem impacto na Terra
• *MODERADA*: 500-1000 km/s - Pode causar auroras fracas
• *RÁPIDA*: 1000-2000 km/s - Tempestades geomagnéticas
• *EXTREMA*: >2000 km/s - Eventos G4-G5 garantidos

🕐 *TEMPO DE CHEGADA*:
• CME lenta: 3-5 dias
• CME rápida: 1-2 dias
• CME extrema: 8-24 horas

🔍 *OBSERVAÇÃO*:
CMEs não são diretamente visíveis, mas causam:
• Auroras 1-3 dias depois
• Mudanças no vento solar (detectável por satélites)
• Perturbações no campo magnético terrestre`

const quietFLR = `🔥 *EXPLOSÕES SOLARES (SOLAR FLARES)*

✅ *STATUS*: Atividade normal
📊 *EVENTOS*: 0 nos últimos 7 dias

🔬 *O QUE SÃO*:
Liberações súbitas de energia eletromagnética da atmosfera solar, durando minutos a horas.

📊 *CLASSIFICAÇÃO*:
• *Classe A*: <10⁻⁷ W/m² - Eventos de background
• *Classe B*: 10⁻⁷ a 10⁻⁶ W/m² - Eventos menores
• *Classe C*: 10⁻⁶ a 10⁻⁵ W/m² - Pequenos, poucos efeitos
• *Classe M*: 10⁻⁵ a 10⁻⁴ W/m² - Médios, apagões de rádio
• *Classe X*: >10⁻⁴ W/m² - Extremos, grandes impactos

📈 *SAZONALIDADE*:
• *MÁXIMO SOLAR*: 2024-2026 - Centenas de flares M e X por ano
• *MÍNIMO SOLAR*: 2029-2031 - Raros eventos classe M/X
• *CICLO DIÁRIO*: Mais comum entre 12h-18h UTC

⚡ *VELOCIDADE DA LUZ*:
Radiação chega à Terra em 8 minutos!

🔍 *OBSERVAÇÃO SEGURA*:
⚠️ *NUNCA* observe o Sol diretamente!
• Use telescópios solares com filtros adequados
• Monitore através de radiotelescópios
• Acompanhe via satélites (SDO, SOHO)

📡 *EQUIPAMENTOS AFETADOS*:
• Rádios HF (3-30 MHz) - Apagões durante flares M/X
• GPS - Degradação de precisão por horas
• Satélites - Possíveis danos em eventos X extremos`

const quietSEP = `⚡ *PARTÍCULAS ENERGÉTICAS SOLARES (SEP)*

✅ *STATUS*: Sem eventos detectados
📊 *PARTÍCULAS*: Níveis normais

🔬 *O QUE SÃO*:
Prótons e elétrons acelerados a velocidades relativísticas por explosões solares ou choques de CMEs.

📈 *SAZONALIDADE & CICLO SOLAR*:
• *MÁXIMO SOLAR (2024-2026)*: 50-100 eventos/ano
• *FASE DESCENDENTE (2027-2029)*: 20-50 eventos/ano
• *MÍNIMO SOLAR (2030-2032)*: <10 eventos/ano
• *PICOS ANUAIS*: Março-Abril e Setembro-Outubro

⚡ *CLASSIFICAÇÃO DE ENERGIA*:
• *>10 MeV*: Prótons de energia moderada
• *>50 MeV*: Prótons de alta energia
• *>100 MeV*: Prótons de energia muito alta
• *>500 MeV*: Prótons de energia extrema

🕐 *DURAÇÃO & PROPAGAÇÃO*:
• *Chegada à Terra*: 15-60 minutos após flare
• *Duração*: Algumas horas a vários dias
• *Velocidade*: 10-90% da velocidade da luz

🛰️ *IMPACTOS CRÍTICOS*:
• *ASTRONAUTAS*: Risco de radiação extrema (EVAs canceladas)
• *AVIAÇÃO*: Voos polares desviados ou cancelados
• *SATÉLITES*: Degradação de painéis solares, falhas em componentes
• *SENSORES ASTRONÔMICOS*: Ruído em detectores CCD/CMOS

⚠️ *ALERTAS PARA ASTROFOTÓGRAFOS*:
• Evite exposições longas durante eventos intensos
• SEP pode causar pixels quentes em sensores
• Use dark frames para correção pós-processamento

🔍 *DETECÇÃO & MONITORAMENTO*:
• Satélites GOES (alertas em tempo real)
• Detectores de nêutrons terrestres
• Observatórios de raios cósmicos`

const quietHSS = `🌊 *CORRENTES DE VENTO SOLAR RÁPIDO (HSS)*

✅ *STATUS*: Vento solar normal (~400 km/s)
📊 *VELOCIDADE*: Dentro dos parâmetros normais

🔬 *O QUE SÃO*:
Correntes de plasma solar de alta velocidade originadas de buracos coronais, atingindo 500-800 km/s.

📈 *CICLO SOLAR & SAZONALIDADE*:
• *MÍNIMO SOLAR (2020-2023)*: HSS dominante, eventos recorrentes
• *MÁXIMO SOLAR (2024-2026)*: HSS menos frequente, mascarado por CMEs
• *PADRÃO RECORRENTE*: A cada 27 dias (rotação solar)
• *PICOS SEMIANUAIS*: Equinócios devido ao ângulo Terra-Sol

🌊 *CLASSIFICAÇÃO DE VELOCIDADE*:
• *Normal*: 300-450 km/s - Sem efeitos
• *Moderado*: 450-550 km/s - Auroras fracas possíveis
• *Alto*: 550-700 km/s - Tempestades G1-G2
• *Extremo*: >700 km/s - Tempestades G3+ possíveis

🕐 *CARACTERÍSTICAS TEMPORAIS*:
• *Duração*: 2-7 dias (típico 3-5 dias)
• *Velocidade de chegada*: Constante (não há aviso prévio)
• *Padrão*: Aumento gradual, depois queda

🔍 *BURACOS CORONAIS*:
• *Fonte*: Regiões de campo magnético aberto no Sol
• *Localização*: Polos solares principalmente
• *Vida útil*: Semanas a meses
• *Detecção*: Imagens EUV do Sol (SDO/AIA)

🌈 *IMPACTOS PARA OBSERVAÇÃO*:
• Auroras de baixa latitude durante HSS intensos
• Atividade mais suave e prolongada que CMEs
• Melhor para fotos de aurora de longa exposição
• Padrão previsível (recorrência de 27 dias)

📡 *MONITORAMENTO*:
• Monitor de vento solar ACE/DSCOVR
• Previsão baseada em mapas coronais
• Apps: Solar Monitor, Space Weather Pro`

const gstTechnical = `• Distúrbio causado por interação vento solar-magnetosfera
• Intensidade medida pelo índice Kp (0-9)
• Correlação com velocidade do vento solar (>400 km/s)
• Duração típica: 6-72 horas`

const gstObservationTips = `• Use apps: Aurora Forecast, SpaceWeatherLive
• Câmera: ISO 1600-6400, 10-30s exposição
• Melhor horário: 20h-02h local
• Direção: Norte (hemisfério sul)`

const cmeTechnical = `• Plasma magnetizado ejetado da coroa solar
• Velocidade medida por coronógrafos (SOHO/LASCO, STEREO)
• CMEs halo indicam trajetória em direção à Terra
• Impacto depende da orientação do campo magnético (Bz sul)`

const flareTechnical = `• Reconexão magnética em regiões ativas
• Classificação pelo fluxo de raios-X (GOES 1-8 Å)
• Flares M/X frequentemente acompanhados de CMEs
• Efeitos na ionosfera do lado diurno da Terra`

const flareMonitoringTips = `• Alertas de raios-X: SWPC/NOAA em tempo real
• Imagens: SDO/AIA (171 Å e 131 Å)
• Rádio amador: monitore apagões em HF
• Apps: SpaceWeatherLive, Solar Monitor`

const sepTechnical = `
🔬 *DETALHES TÉCNICOS SEP*:
• Aceleração: Flares classe M/X ou choques de CME
• Energia: 1-1000 MeV (típico 10-100 MeV)
• Velocidade: 10-90% da velocidade da luz
• Detecção: Satélites GOES, detectores terrestres

⚠️ *IMPACTOS ESPECÍFICOS*:
• *CCD/CMOS*: Pixels quentes, ruído aumentado
• *Astronautas*: Dose de radiação extrema
• *Eletrônicos*: SEU/SEL em componentes`

const hssTechnical = `
🔬 *DETALHES TÉCNICOS HSS*:
• Origem: Buracos coronais (campo magnético aberto)
• Velocidade típica: 500-800 km/s (vs 300-450 normal)
• Densidade: Baixa (~5 partículas/cm³)
• Temperatura: Moderada (~100,000 K)

🌈 *CARACTERÍSTICAS AUROREAIS*:
• Tipo: Auroras difusas e suaves
• Cor predominante: Verde (557.7 nm)
• Duração: Várias horas contínuas
• Movimento: Lento e gradual`

const bestBrazilLocations = `• *Sul (RS/SC)*: Latitude ~30°S - melhor chance
• *Sudeste (SP/MG)*: Lat ~20°S - eventos G3+
• *Nordeste (BA/CE)*: Lat ~10°S - apenas G4/G5
• *Norte (AM/PA)*: Lat ~0°S - eventos extremos G5`

const auroraCameraSettings = `• *ISO*: 1600 (início), até 6400 se necessário
• *Abertura*: f/1.4-f/2.8 (máxima disponível)
• *Foco*: Infinito (manual)
• *Exposição*: 10s (movimento rápido), 30s (suave)
• *Formato*: RAW + JPEG
• *WB*: Auto ou 3000-4000K`
